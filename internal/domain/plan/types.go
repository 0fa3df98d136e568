package plan

// Package plan contains domain-level types for the planning conversation:
// the message timeline, trip preferences, and the itinerary artifact.

// MessageRole identifies who authored a timeline message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single entry in the conversation timeline. IDs are
// unique and monotonically increasing so the timeline renders stably;
// the sequence is append-only and never reordered.
type Message struct {
	ID      uint64      `json:"id"`
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Preferences is the trip request payload supplied by the user. It is
// opaque to the conversation engine: either free text or a structured
// form, carried verbatim to the planning API and overwritten wholesale
// on each new generation request.
type Preferences struct {
	Text string         `json:"text,omitempty"`
	Form map[string]any `json:"form,omitempty"`
}

// TextPreferences wraps a free-form trip request.
func TextPreferences(text string) Preferences {
	return Preferences{Text: text}
}

// FormPreferences wraps a structured trip request.
func FormPreferences(form map[string]any) Preferences {
	return Preferences{Form: form}
}

// Payload returns the value to place on the wire: the structured form
// when present, otherwise the raw text.
func (p Preferences) Payload() any {
	if p.Form != nil {
		return p.Form
	}
	return p.Text
}

// IsZero reports whether no preferences have been supplied.
func (p Preferences) IsZero() bool {
	return p.Text == "" && p.Form == nil
}

// Activity is a single scheduled item within a day plan.
type Activity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// Day is one day of a generated itinerary.
type Day struct {
	Day                  int        `json:"day"`
	Location             string     `json:"location"`
	Theme                string     `json:"theme"`
	Activities           []Activity `json:"activities"`
	SuggestedRestaurants []string   `json:"suggested_restaurants,omitempty"`
	Narrative            string     `json:"narrative,omitempty"`
}

// Itinerary is a structured day-by-day trip plan produced by the
// planning service. At most one itinerary is current at a time; a new
// successful generation replaces it atomically.
type Itinerary struct {
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	TripTheme string `json:"trip_theme,omitempty"`
	TotalDays int    `json:"total_days,omitempty"`
	Days      []Day  `json:"days"`
}
