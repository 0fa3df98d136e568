package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlanka/planner-cli/internal/adapters/travelapi"
	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	mocksauth "github.com/wanderlanka/planner-cli/internal/mocks/auth"
	"github.com/wanderlanka/planner-cli/internal/testutil"
)

// Exercises the full plan flow, conversation through the real HTTP
// client against a stub server.
func TestConversation_GenerateAgainstStubServer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/plan/", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"title": "Cultural Triangle",
			"total_days": 2,
			"days": [
				{"day": 1, "location": "Sigiriya", "theme": "heritage", "activities": [
					{"time": "09:00", "activity": "Rock fortress climb", "description": "Early start"}
				]},
				{"day": 2, "location": "Kandy", "theme": "temples", "activities": []}
			]
		}`))
	}))
	defer srv.Close()

	client, err := travelapi.NewClient(travelapi.Config{
		BaseURL: srv.URL,
		Logger:  testutil.DiscardLogger(),
	})
	require.NoError(t, err)

	conv, err := NewConversation(ConversationOptions{
		Planner: client,
		Tokens:  mocksauth.StaticTokenSource("stub-access"),
		Logger:  testutil.DiscardLogger(),
	})
	require.NoError(t, err)

	prefs := plan.FormPreferences(map[string]any{"duration": 2, "tripType": "culture"})
	conv.Generate(context.Background(), prefs)

	assert.Equal(t, "Bearer stub-access", gotAuth)
	require.NotNil(t, conv.Itinerary())
	assert.Equal(t, "Cultural Triangle", conv.Itinerary().Title)
	require.Len(t, conv.Itinerary().Days, 2)
	assert.Equal(t, "Sigiriya", conv.Itinerary().Days[0].Location)
	assert.False(t, conv.IsLoading())

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "I've created a Cultural Triangle for you! Check the dashboard on the right.", msgs[1].Content)
}

func TestConversation_SendAgainstStubServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chat_response": "Galle fort is lovely in the evening."}`))
	}))
	defer srv.Close()

	client, err := travelapi.NewClient(travelapi.Config{
		BaseURL: srv.URL,
		Logger:  testutil.DiscardLogger(),
	})
	require.NoError(t, err)

	conv, err := NewConversation(ConversationOptions{
		Planner: client,
		Tokens:  mocksauth.StaticTokenSource("stub-access"),
		Logger:  testutil.DiscardLogger(),
	})
	require.NoError(t, err)

	conv.Send(context.Background(), "what about Galle?")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, plan.RoleUser, msgs[1].Role)
	assert.Equal(t, "what about Galle?", msgs[1].Content)
	assert.Equal(t, "Galle fort is lovely in the evening.", msgs[2].Content)
	assert.Nil(t, conv.Itinerary())
}
