package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanderlanka/planner-cli/internal/bootstrap"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Manage saved trips",
}

var tripsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved trips from the local archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			trips, err := app.Trips.List(ctx)
			if err != nil {
				return err
			}
			printTrips(trips)
			return nil
		})
	},
}

var tripsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull saved trips from the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			if !app.Guard.Authorize(ctx, nav.RoutePlanner) {
				return errors.New("not signed in; run `wanderlanka login` first")
			}

			trips, err := app.Trips.Sync(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Synced %d trip(s).\n", len(trips))
			printTrips(trips)
			return nil
		})
	},
}

var tripsOpenCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a saved trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			trip, err := app.Trips.Open(ctx, args[0])
			if err != nil {
				if errors.Is(err, ports.ErrTripNotFound) {
					return fmt.Errorf("no saved trip with id %q; run `wanderlanka trips sync`", args[0])
				}
				return err
			}

			app.Conversation.LoadSaved(trip)
			printLastReply(app)
			printItinerary(app.Conversation.Itinerary())
			return nil
		})
	},
}

var tripsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			if !app.Guard.Authorize(ctx, nav.RoutePlanner) {
				return errors.New("not signed in; run `wanderlanka login` first")
			}

			if err := app.Trips.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Trip deleted.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tripsCmd)
	tripsCmd.AddCommand(tripsListCmd, tripsSyncCmd, tripsOpenCmd, tripsDeleteCmd)
}

func printTrips(trips []ports.SavedTrip) {
	if len(trips) == 0 {
		fmt.Println("No saved trips.")
		return
	}
	for _, trip := range trips {
		fmt.Printf("%-12s %s (%d days, saved %s)\n",
			trip.ID, trip.Title, len(trip.Itinerary.Days), trip.CreatedAt.Format("2006-01-02"))
	}
}
