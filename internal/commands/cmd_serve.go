package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/activityboard/internal/core/activity"
	"github.com/hay-kot/activityboard/internal/printer"
	"github.com/hay-kot/activityboard/internal/server"
	"github.com/hay-kot/activityboard/internal/store/jsonfile"
)

type ServeCmd struct {
	flags    *Flags
	addr     string
	dataFile string
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Run a development activity service",
		UsageText: "board serve [--addr ADDR] [--data FILE]",
		Description: `Serves the activity API on ADDR, seeded with the default activities.

Without --data (or serve.data_file in the config) activities live in memory
and reset on restart.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (defaults to serve.addr)",
				Sources:     cli.EnvVars("BOARD_SERVE_ADDR"),
				Destination: &cmd.addr,
			},
			&cli.StringFlag{
				Name:        "data",
				Usage:       "JSON file to persist activities in (defaults to serve.data_file)",
				Destination: &cmd.dataFile,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	addr := cmd.addr
	if addr == "" {
		addr = cmd.flags.Config.Serve.Addr
	}
	dataFile := cmd.dataFile
	if dataFile == "" {
		dataFile = cmd.flags.Config.Serve.DataFile
	}

	store := jsonfile.New(dataFile)
	if err := store.Seed(ctx, activity.DefaultSeed()); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage := "memory"
	if dataFile != "" {
		storage = dataFile
	}
	printer.Ctx(ctx).Infof("serving activities on %s (storage: %s)", addr, storage)

	logger := log.With().Str("component", "server").Logger()
	return server.New(store, logger).Run(ctx, addr)
}
