package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanderlanka/planner-cli/internal/bootstrap"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send a message to the travel agent",
	Long: `Send a free-form message to the travel agent. A message that reads
like a trip request comes back as a full itinerary; anything else gets
a conversational reply.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			if !app.Guard.Authorize(ctx, nav.RoutePlanner) {
				return errors.New("not signed in; run `wanderlanka login` first")
			}

			app.Conversation.Send(ctx, strings.Join(args, " "))

			printLastReply(app)

			if it := app.Conversation.Itinerary(); it != nil {
				printItinerary(it)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
