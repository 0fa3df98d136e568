package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

const greeting = `Hi! I am your Sri Lanka Travel Agent. Tell me about your dream trip (e.g., "7 days beach and culture").`

// ConversationOptions groups dependencies for Conversation.
type ConversationOptions struct {
	Planner ports.PlanningService
	Tokens  ports.TokenSource
	Logger  *slog.Logger
}

// Conversation holds the planning dialogue: an append-only message
// timeline, the current itinerary, and the preferences that produced
// it. Every user action settles into an assistant message; transport
// and server faults become apologetic replies rather than errors, so
// the timeline never loses an exchange.
type Conversation struct {
	planner ports.PlanningService
	tokens  ports.TokenSource
	logger  *slog.Logger

	mu        sync.RWMutex
	messages  []plan.Message
	itinerary *plan.Itinerary
	prefs     plan.Preferences
	loading   bool
	nextID    uint64
}

// NewConversation constructs a Conversation seeded with the assistant
// greeting.
func NewConversation(opts ConversationOptions) (*Conversation, error) {
	if opts.Planner == nil {
		return nil, errors.New("planning service is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("token source is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Conversation{
		planner: opts.Planner,
		tokens:  opts.Tokens,
		logger:  logger,
		nextID:  1,
	}
	c.appendLocked(plan.RoleAssistant, greeting)
	return c, nil
}

// Generate runs a structured planning request. The preferences are
// recorded for later editing before the request is dispatched, even
// when generation fails. A chat-shaped response is treated the same as
// an empty one: this path produces itineraries, not small talk.
func (c *Conversation) Generate(ctx context.Context, prefs plan.Preferences) {
	c.mu.Lock()
	c.prefs = prefs
	c.loading = true
	c.mu.Unlock()
	defer c.setLoading(false)

	result, err := c.planner.Plan(ctx, c.tokens.Token(), prefs)
	if err != nil {
		c.logger.ErrorContext(ctx, "plan request failed", slog.Any("error", err))
		c.appendMessage(plan.RoleAssistant, "Sorry, I had trouble creating the plan. Please try again.")
		return
	}

	if result.Kind == plan.KindItinerary {
		c.installItinerary(result.Itinerary)
		return
	}
	c.appendMessage(plan.RoleAssistant, "I couldn't generate a plan. Please try again.")
}

// Send submits a free-text message. The user's message is appended
// optimistically before the request is dispatched, so it stays on the
// timeline whatever the outcome.
func (c *Conversation) Send(ctx context.Context, text string) {
	c.mu.Lock()
	c.appendLocked(plan.RoleUser, text)
	c.loading = true
	c.mu.Unlock()
	defer c.setLoading(false)

	result, err := c.planner.Plan(ctx, c.tokens.Token(), plan.TextPreferences(text))
	if err != nil {
		c.logger.ErrorContext(ctx, "chat request failed", slog.Any("error", err))
		c.appendMessage(plan.RoleAssistant, "Sorry, I encountered an error connecting to the AI.")
		return
	}

	switch result.Kind {
	case plan.KindItinerary:
		c.installItinerary(result.Itinerary)
	case plan.KindChat:
		c.appendMessage(plan.RoleAssistant, result.Chat)
	default:
		c.appendMessage(plan.RoleAssistant, "I couldn't generate a response. Please try being more specific.")
	}
}

// LoadSaved installs a previously saved itinerary and notes it on the
// timeline so the dialogue reads naturally.
func (c *Conversation) LoadSaved(trip ports.SavedTrip) {
	it := trip.Itinerary
	c.mu.Lock()
	defer c.mu.Unlock()
	c.itinerary = &it
	c.appendLocked(plan.RoleAssistant, fmt.Sprintf("I've opened your saved trip: %s! Feel free to hit \"Start Journey\" when you're ready.", it.Title))
}

// Messages returns a snapshot of the timeline in append order.
func (c *Conversation) Messages() []plan.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]plan.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Itinerary returns the current itinerary, or nil when none has been
// generated or loaded yet.
func (c *Conversation) Itinerary() *plan.Itinerary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.itinerary == nil {
		return nil
	}
	it := *c.itinerary
	return &it
}

// Preferences returns the preferences from the most recent Generate
// call.
func (c *Conversation) Preferences() plan.Preferences {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prefs
}

// IsLoading reports whether a request is in flight.
func (c *Conversation) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Conversation) installItinerary(it *plan.Itinerary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.itinerary = it
	c.appendLocked(plan.RoleAssistant, fmt.Sprintf("I've created a %s for you! Check the dashboard on the right.", it.Title))
}

// appendLocked adds a message to the timeline; callers hold c.mu.
func (c *Conversation) appendLocked(role plan.MessageRole, content string) {
	c.messages = append(c.messages, plan.Message{ID: c.nextID, Role: role, Content: content})
	c.nextID++
}

func (c *Conversation) appendMessage(role plan.MessageRole, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appendLocked(role, content)
}

func (c *Conversation) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}
