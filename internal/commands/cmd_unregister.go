package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/activityboard/internal/core/validate"
)

type UnregisterCmd struct {
	flags *Flags
	email string
}

// NewUnregisterCmd creates a new unregister command
func NewUnregisterCmd(flags *Flags) *UnregisterCmd {
	return &UnregisterCmd{flags: flags}
}

// Register adds the unregister command to the application
func (cmd *UnregisterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "unregister",
		Aliases:   []string{"rm"},
		Usage:     "Remove a student from an activity",
		UsageText: "board unregister --email EMAIL NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "student email",
				Required:    true,
				Destination: &cmd.email,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *UnregisterCmd) run(ctx context.Context, c *cli.Command) error {
	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if err := validate.ActivityName(name); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	if err := validate.Email(cmd.email); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	return reportOutcome(ctx, cmd.flags.Controller.Unregister(ctx, name, cmd.email))
}
