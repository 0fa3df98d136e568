package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanderlanka/planner-cli/internal/bootstrap"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

var (
	planDays  int
	planStart string
	planGroup string
	planStyle string
	planSave  bool
)

var planCmd = &cobra.Command{
	Use:   "plan [request]",
	Short: "Generate a trip itinerary",
	Long: `Generate a day-by-day itinerary. Pass a free-form request as an
argument, or describe the trip with flags:

  wanderlanka plan "7 days beach and culture"
  wanderlanka plan --days 7 --style Beach --start Colombo --group Couple`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			if !app.Guard.Authorize(ctx, nav.RoutePlanner) {
				return errors.New("not signed in; run `wanderlanka login` first")
			}

			prefs, err := buildPreferences(cmd, args)
			if err != nil {
				return err
			}

			app.Conversation.Generate(ctx, prefs)

			printLastReply(app)

			it := app.Conversation.Itinerary()
			if it == nil {
				return errors.New("no itinerary was generated")
			}
			printItinerary(it)

			if planSave {
				saved, err := app.Trips.Save(ctx, ports.SavedTrip{Title: it.Title, Itinerary: *it})
				if err != nil {
					return err
				}
				fmt.Printf("\nSaved as trip %s.\n", saved.ID)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().IntVar(&planDays, "days", 0, "Trip length in days")
	planCmd.Flags().StringVar(&planStart, "start", "", "Starting location")
	planCmd.Flags().StringVar(&planGroup, "group", "", "Group size (Solo, Couple, Family...)")
	planCmd.Flags().StringVar(&planStyle, "style", "", "Trip style (Beach, Culture, Wildlife...)")
	planCmd.Flags().BoolVar(&planSave, "save", false, "Save the generated itinerary")
}

// buildPreferences assembles the planning request: a structured form
// when any trip flag is set, otherwise the free-text argument.
func buildPreferences(cmd *cobra.Command, args []string) (plan.Preferences, error) {
	structured := cmd.Flags().Changed("days") || planStart != "" || planGroup != "" || planStyle != ""

	if structured {
		form := map[string]any{}
		if planDays > 0 {
			form["duration"] = planDays
		}
		if planStart != "" {
			form["startLocation"] = planStart
		}
		if planGroup != "" {
			form["groupSize"] = planGroup
		}
		if planStyle != "" {
			form["tripType"] = planStyle
		}
		return plan.FormPreferences(form), nil
	}

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return plan.Preferences{}, errors.New("describe the trip: pass a request or use --days/--style flags")
	}
	return plan.TextPreferences(args[0]), nil
}

func printLastReply(app *bootstrap.App) {
	msgs := app.Conversation.Messages()
	if len(msgs) == 0 {
		return
	}
	last := msgs[len(msgs)-1]
	if last.Role == plan.RoleAssistant {
		fmt.Println(last.Content)
	}
}

func printItinerary(it *plan.Itinerary) {
	fmt.Printf("\n%s\n", it.Title)
	if it.Summary != "" {
		fmt.Println(it.Summary)
	}
	for _, day := range it.Days {
		fmt.Printf("\nDay %d: %s", day.Day, day.Location)
		if day.Theme != "" {
			fmt.Printf(" (%s)", day.Theme)
		}
		fmt.Println()
		for _, act := range day.Activities {
			fmt.Printf("  %-10s %s", act.Time, act.Activity)
			if act.Description != "" {
				fmt.Printf(" - %s", act.Description)
			}
			fmt.Println()
		}
		if len(day.SuggestedRestaurants) > 0 {
			fmt.Printf("  Eat at: %s\n", strings.Join(day.SuggestedRestaurants, ", "))
		}
	}
}
