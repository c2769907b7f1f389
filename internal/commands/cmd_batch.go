package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/activityboard/internal/client"
	"github.com/hay-kot/activityboard/internal/core/validate"
)

const (
	// StatusSignedUp indicates the signup was accepted.
	StatusSignedUp = "signed_up"
	// StatusFailed indicates the signup was rejected or could not be sent.
	StatusFailed = "failed"
	// StatusSkipped indicates the signup was not attempted due to failure threshold.
	StatusSkipped = "skipped"

	// maxFailures is the number of failures before stopping batch processing.
	maxFailures = 3
)

// BatchInput is the JSON input schema for batch signups.
type BatchInput struct {
	Signups []BatchSignup `json:"signups"`
}

// Validate checks the batch input for errors using criterio.
func (b BatchInput) Validate() error {
	if len(b.Signups) == 0 {
		return criterio.NewFieldErrors("signups", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder
	seen := make(map[BatchSignup]bool)

	for i, s := range b.Signups {
		field := fmt.Sprintf("signups[%d]", i)

		if err := validate.ActivityName(s.Activity); err != nil {
			errs = errs.Append(field+".activity", err)
			continue
		}
		if err := validate.Email(s.Email); err != nil {
			errs = errs.Append(field+".email", err)
			continue
		}

		if seen[s] {
			errs = errs.Append(field, fmt.Errorf("duplicate signup of %q for %q", s.Email, s.Activity))
			continue
		}
		seen[s] = true
	}

	return errs.ToError()
}

// BatchSignup is a single signup request.
type BatchSignup struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

// BatchResult is the output for a single signup attempt.
type BatchResult struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchOutput is the JSON output schema.
type BatchOutput struct {
	BatchID string        `json:"batch_id"`
	Results []BatchResult `json:"results"`
}

// BatchErrorOutput is the JSON output for fatal errors.
type BatchErrorOutput struct {
	Error string `json:"error"`
}

type BatchCmd struct {
	flags *Flags
	file  string
}

func NewBatchCmd(flags *Flags) *BatchCmd {
	return &BatchCmd{flags: flags}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Sign up many students from JSON input",
		UsageText: `board batch [options]

Read from stdin:
  echo '{"signups":[{"activity":"Chess Club","email":"a@mergington.edu"}]}' | board batch

Read from file:
  board batch -f signups.json`,
		Description: `Signs students up sequentially from a JSON list.

Processing stops after 3 failures. Signups not attempted are marked as skipped.

Input JSON schema:
  {
    "signups": [
      {"activity": "Chess Club", "email": "student@mergington.edu"}
    ]
  }

Output is JSON with a batch ID and a result for each signup.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to JSON file (reads from stdin if not provided)",
				Destination: &cmd.file,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	var (
		batchID = uuid.NewString()
		out     = c.Root().Writer
		logger  = log.With().Str("component", "batch").Str("batch_id", batchID).Logger()
	)

	logger.Info().Msg("starting batch processing")

	input, err := cmd.readInput(c.Root().Reader)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return writeBatchError(out, fmt.Errorf("read input: %w", err))
	}

	if err := input.Validate(); err != nil {
		logger.Error().Err(err).Msg("input validation failed")
		return writeBatchError(out, fmt.Errorf("invalid input: %w", err))
	}

	output := runBatch(ctx, cmd.flags.Client, input, logger)
	output.BatchID = batchID

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// runBatch submits every signup in order, giving up after maxFailures.
func runBatch(ctx context.Context, svc signupService, input BatchInput, logger zerolog.Logger) BatchOutput {
	output := BatchOutput{Results: make([]BatchResult, 0, len(input.Signups))}

	failures := 0
	for i, s := range input.Signups {
		if failures >= maxFailures {
			logger.Warn().Str("activity", s.Activity).Msg("skipping signups due to failure threshold")
			for _, rest := range input.Signups[i:] {
				output.Results = append(output.Results, BatchResult{
					Activity: rest.Activity,
					Email:    rest.Email,
					Status:   StatusSkipped,
				})
			}
			break
		}

		result := BatchResult{Activity: s.Activity, Email: s.Email, Status: StatusSignedUp}

		msg, err := svc.Signup(ctx, s.Activity, s.Email)
		if err != nil {
			failures++
			result.Status = StatusFailed
			result.Error = err.Error()
			if se, ok := client.AsStatusError(err); ok && se.Detail != "" {
				result.Error = se.Detail
			}
			logger.Error().Err(err).Str("activity", s.Activity).Int("index", i).Msg("signup failed")
		} else {
			result.Message = msg
			logger.Info().Str("activity", s.Activity).Int("index", i).Msg("signed up")
		}

		output.Results = append(output.Results, result)
	}

	logger.Info().
		Int("total", len(input.Signups)).
		Int("signed_up", countByStatus(output.Results, StatusSignedUp)).
		Int("failed", countByStatus(output.Results, StatusFailed)).
		Int("skipped", countByStatus(output.Results, StatusSkipped)).
		Msg("batch processing complete")

	return output
}

// signupService is the part of the client batch needs.
type signupService interface {
	Signup(ctx context.Context, name, email string) (string, error)
}

func (cmd *BatchCmd) readInput(stdin io.Reader) (BatchInput, error) {
	var reader io.Reader

	if cmd.file != "" {
		f, err := os.Open(cmd.file)
		if err != nil {
			return BatchInput{}, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return BatchInput{}, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = stdin
	}

	var input BatchInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return BatchInput{}, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func writeBatchError(out io.Writer, err error) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(BatchErrorOutput{Error: err.Error()}); encErr != nil {
		fmt.Fprintf(os.Stderr, "error: %s (failed to write JSON: %v)\n", err, encErr)
	}
	return err
}

func countByStatus(results []BatchResult, status string) int {
	count := 0
	for _, r := range results {
		if r.Status == status {
			count++
		}
	}
	return count
}
