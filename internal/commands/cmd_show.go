package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/core/activity"
)

const defaultShowWidth = 80

type ShowCmd struct {
	flags *Flags
	raw   bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "show",
		Usage:       "Show one activity",
		UsageText:   "board show [--raw] NAME",
		Description: "Renders the activity's details and participants as markdown.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the markdown source without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if name == "" {
		return fmt.Errorf("activity name is required")
	}

	activities, err := cmd.flags.Client.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}

	a, ok := findActivity(activities, name)
	if !ok {
		return fmt.Errorf("%q: %w", name, activity.ErrNotFound)
	}

	md := activityMarkdown(a)
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	width := defaultShowWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render activity: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

func findActivity(activities []activity.Activity, name string) (activity.Activity, bool) {
	for _, a := range activities {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return activity.Activity{}, false
}

// activityMarkdown describes a as a markdown document. Participants are
// listed even when the activity is full.
func activityMarkdown(a activity.Activity) string {
	var b strings.Builder

	title := a.Name
	if a.IsFull() {
		title += " (FULL)"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if a.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", a.Description)
	}

	fmt.Fprintf(&b, "- **Schedule:** %s\n", a.Schedule)
	fmt.Fprintf(&b, "- **Availability:** %d spots left\n\n", max(a.SpotsLeft(), 0))

	b.WriteString("## Participants\n\n")
	if len(a.Participants) == 0 {
		fmt.Fprintf(&b, "_%s_\n", board.NoParticipantsText)
		return b.String()
	}
	for _, p := range a.Participants {
		fmt.Fprintf(&b, "- %s\n", p)
	}

	return b.String()
}
