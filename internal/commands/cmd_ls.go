package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/core/activity"
	"github.com/hay-kot/activityboard/internal/printer"
)

type LsCmd struct {
	flags  *Flags
	filter string
	json   bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Usage:       "List all activities",
		UsageText:   "board ls [--filter GLOB] [--json]",
		Description: "Displays a table of activities with their schedule and remaining spots.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "only show activities whose name matches the glob (e.g. '*Club')",
				Destination: &cmd.filter,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the activities as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.filter != "" && !doublestar.ValidatePattern(cmd.filter) {
		return fmt.Errorf("invalid filter %q", cmd.filter)
	}

	activities, err := cmd.flags.Client.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	activities = filterActivities(activities, cmd.filter)
	out := c.Root().Writer

	if cmd.json {
		if activities == nil {
			activities = []activity.Activity{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(activities)
	}

	if len(activities) == 0 {
		printer.Ctx(ctx).Infof("No activities found")
		return nil
	}

	listing := board.BuildListing(activities)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSPOTS\tSCHEDULE")
	for _, card := range listing.Cards {
		spots := "FULL"
		if !card.Full {
			spots = strconv.Itoa(card.SpotsLeft)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", card.Name, spots, activitySchedule(activities, card.Name))
	}

	return w.Flush()
}

// filterActivities keeps the activities whose name matches pattern. An empty
// pattern keeps everything.
func filterActivities(activities []activity.Activity, pattern string) []activity.Activity {
	if pattern == "" {
		return activities
	}

	var out []activity.Activity
	for _, a := range activities {
		if ok, _ := doublestar.Match(pattern, a.Name); ok {
			out = append(out, a)
		}
	}
	return out
}

// activitySchedule looks up the schedule for name; full cards do not carry it.
func activitySchedule(activities []activity.Activity, name string) string {
	for _, a := range activities {
		if a.Name == name {
			return a.Schedule
		}
	}
	return ""
}
