package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/core/validate"
	"github.com/hay-kot/activityboard/internal/printer"
)

type SignupCmd struct {
	flags *Flags
	email string
}

// NewSignupCmd creates a new signup command
func NewSignupCmd(flags *Flags) *SignupCmd {
	return &SignupCmd{flags: flags}
}

// Register adds the signup command to the application
func (cmd *SignupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "signup",
		Usage:       "Sign a student up for an activity",
		UsageText:   "board signup --email EMAIL NAME",
		Description: "Signs the student up and prints the service's message or rejection detail.",
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

func (cmd *SignupCmd) run(ctx context.Context, c *cli.Command) error {
	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if err := validate.ActivityName(name); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	if err := validate.Email(cmd.email); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	return reportOutcome(ctx, cmd.flags.Controller.Signup(ctx, cmd.email, name))
}

// reportOutcome prints o and turns an error outcome into a non-zero exit.
func reportOutcome(ctx context.Context, o board.Outcome) error {
	p := printer.Ctx(ctx)

	if o.Kind == board.KindError {
		p.Errorf("%s", o.Text)
		return cli.Exit("", 1)
	}

	p.Successf("%s", o.Text)
	return nil
}
