package plan

import "encoding/json"

// ResultKind tags the decoded shape of a planning response.
type ResultKind string

const (
	// KindItinerary marks a response carrying a day-by-day structure.
	KindItinerary ResultKind = "itinerary"
	// KindChat marks a conversational reply with no itinerary.
	KindChat ResultKind = "chat"
	// KindNone marks a well-formed response matching neither shape
	// (handled as a soft failure, not an error).
	KindNone ResultKind = "none"
)

// Result is the tagged union decoded from a planning response.
// Exactly one of Itinerary or Chat is populated depending on Kind.
type Result struct {
	Kind      ResultKind
	Itinerary *Itinerary
	Chat      string
}

// DecodeResult classifies a raw planning response body. Precedence when
// a body could be read as more than one shape: itinerary over chat over
// none. A body that fails to parse at all decodes as KindNone.
func DecodeResult(body []byte) Result {
	var envelope struct {
		Itinerary
		ChatResponse string `json:"chat_response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Result{Kind: KindNone}
	}

	if len(envelope.Days) > 0 {
		it := envelope.Itinerary
		return Result{Kind: KindItinerary, Itinerary: &it}
	}
	if envelope.ChatResponse != "" {
		return Result{Kind: KindChat, Chat: envelope.ChatResponse}
	}
	return Result{Kind: KindNone}
}
