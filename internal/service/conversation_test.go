package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	"github.com/wanderlanka/planner-cli/internal/mocks"
	mocksauth "github.com/wanderlanka/planner-cli/internal/mocks/auth"
	"github.com/wanderlanka/planner-cli/internal/testutil"
)

func newConversation(t *testing.T, planner *mocks.MockPlanningService) *Conversation {
	t.Helper()
	conv, err := NewConversation(ConversationOptions{
		Planner: planner,
		Tokens:  mocksauth.StaticTokenSource("bearer-token"),
		Logger:  testutil.DiscardLogger(),
	})
	require.NoError(t, err)
	return conv
}

func TestNewConversation_SeedsGreeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	conv := newConversation(t, mocks.NewMockPlanningService(ctrl))

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, uint64(1), msgs[0].ID)
	assert.Equal(t, plan.RoleAssistant, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Sri Lanka Travel Agent")

	assert.Nil(t, conv.Itinerary())
	assert.True(t, conv.Preferences().IsZero())
	assert.False(t, conv.IsLoading())
}

func TestConversation_Generate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	prefs := plan.FormPreferences(map[string]any{"duration": 7, "interests": []string{"beach"}})
	it := testutil.Itinerary("Beach Escape")
	planner.EXPECT().
		Plan(gomock.Any(), "bearer-token", prefs).
		Return(plan.Result{Kind: plan.KindItinerary, Itinerary: &it}, nil)

	conv.Generate(context.Background(), prefs)

	require.NotNil(t, conv.Itinerary())
	assert.Equal(t, "Beach Escape", conv.Itinerary().Title)
	assert.Equal(t, prefs, conv.Preferences())
	assert.False(t, conv.IsLoading())

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, plan.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "I've created a Beach Escape for you! Check the dashboard on the right.", msgs[1].Content)
}

func TestConversation_Generate_EmptyShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindNone}, nil)

	conv.Generate(context.Background(), plan.TextPreferences("7 days"))

	assert.Nil(t, conv.Itinerary())
	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "I couldn't generate a plan. Please try again.", msgs[1].Content)
}

func TestConversation_Generate_ChatShapeIsSoftFailure(t *testing.T) {
	// The structured path produces itineraries; a conversational reply
	// is handled like an empty response.
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindChat, Chat: "Tell me more!"}, nil)

	conv.Generate(context.Background(), plan.TextPreferences("hmm"))

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "I couldn't generate a plan. Please try again.", msgs[1].Content)
}

func TestConversation_Generate_TransportFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	prefs := plan.TextPreferences("7 days beach")
	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), prefs).
		Return(plan.Result{}, errors.New("connection refused"))

	conv.Generate(context.Background(), prefs)

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Sorry, I had trouble creating the plan. Please try again.", msgs[1].Content)

	// Preferences are recorded even when generation fails.
	assert.Equal(t, prefs, conv.Preferences())
	assert.False(t, conv.IsLoading())
}

func TestConversation_Generate_OverwritesPreferencesWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindNone}, nil).
		Times(2)

	first := plan.FormPreferences(map[string]any{"duration": 7})
	second := plan.TextPreferences("something short")
	conv.Generate(context.Background(), first)
	conv.Generate(context.Background(), second)

	assert.Equal(t, second, conv.Preferences())
}

func TestConversation_Send_ItineraryResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	it := testutil.Itinerary("Coastal Week")
	planner.EXPECT().
		Plan(gomock.Any(), "bearer-token", plan.TextPreferences("7 days on the coast")).
		Return(plan.Result{Kind: plan.KindItinerary, Itinerary: &it}, nil)

	conv.Send(context.Background(), "7 days on the coast")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, plan.RoleUser, msgs[1].Role)
	assert.Equal(t, "7 days on the coast", msgs[1].Content)
	assert.Equal(t, "I've created a Coastal Week for you! Check the dashboard on the right.", msgs[2].Content)

	require.NotNil(t, conv.Itinerary())
	assert.Equal(t, "Coastal Week", conv.Itinerary().Title)

	// Free-text sends do not touch the recorded preferences.
	assert.True(t, conv.Preferences().IsZero())
}

func TestConversation_Send_ChatResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindChat, Chat: "The best season is December to March."}, nil)

	conv.Send(context.Background(), "when should I visit?")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "The best season is December to March.", msgs[2].Content)
	assert.Nil(t, conv.Itinerary())
}

func TestConversation_Send_ChatResponsePreservesItinerary(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	it := testutil.Itinerary("Coastal Week")
	gomock.InOrder(
		planner.EXPECT().
			Plan(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(plan.Result{Kind: plan.KindItinerary, Itinerary: &it}, nil),
		planner.EXPECT().
			Plan(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(plan.Result{Kind: plan.KindChat, Chat: "Sure, anything else?"}, nil),
	)

	conv.Send(context.Background(), "7 days on the coast")
	conv.Send(context.Background(), "thanks!")

	require.NotNil(t, conv.Itinerary())
	assert.Equal(t, "Coastal Week", conv.Itinerary().Title)
}

func TestConversation_Send_EmptyShapeFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindNone}, nil)

	conv.Send(context.Background(), "???")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "I couldn't generate a response. Please try being more specific.", msgs[2].Content)
}

func TestConversation_Send_TransportFaultKeepsUserMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{}, errors.New("timeout"))

	conv.Send(context.Background(), "7 days beach")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, plan.RoleUser, msgs[1].Role)
	assert.Equal(t, "7 days beach", msgs[1].Content)
	assert.Equal(t, "Sorry, I encountered an error connecting to the AI.", msgs[2].Content)
	assert.False(t, conv.IsLoading())
}

func TestConversation_MessageIDsIncrease(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindNone}, nil).
		Times(3)

	conv.Send(context.Background(), "one")
	conv.Send(context.Background(), "two")
	conv.Send(context.Background(), "three")

	msgs := conv.Messages()
	for i := 1; i < len(msgs); i++ {
		assert.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
}

func TestConversation_LoadSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	conv := newConversation(t, mocks.NewMockPlanningService(ctrl))

	trip := testutil.SavedTrip("t-1", "Hill Country Loop")
	conv.LoadSaved(trip)

	require.NotNil(t, conv.Itinerary())
	assert.Equal(t, "Hill Country Loop", conv.Itinerary().Title)

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, plan.RoleAssistant, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "Hill Country Loop")
}

func TestConversation_LoadSaved_ReplacesItinerary(t *testing.T) {
	ctrl := gomock.NewController(t)
	planner := mocks.NewMockPlanningService(ctrl)
	conv := newConversation(t, planner)

	it := testutil.Itinerary("Beach Escape")
	planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(plan.Result{Kind: plan.KindItinerary, Itinerary: &it}, nil)
	conv.Generate(context.Background(), plan.TextPreferences("beach"))

	conv.LoadSaved(testutil.SavedTrip("t-1", "Hill Country Loop"))
	assert.Equal(t, "Hill Country Loop", conv.Itinerary().Title)
}
