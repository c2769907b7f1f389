package board

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hay-kot/activityboard/internal/client"
	"github.com/hay-kot/activityboard/internal/core/activity"
)

// Banner texts for action outcomes.
const (
	SignupFailedText     = "Failed to sign up. Please try again."
	GenericErrorText     = "An error occurred"
	UnregisteredText     = "Participant unregistered successfully."
	UnregisterFailedText = "Failed to unregister participant."
	UnregisterErrorText  = "An error occurred while trying to unregister the participant."
)

// Service is the remote activity service the controller drives.
type Service interface {
	ListActivities(ctx context.Context) ([]activity.Activity, error)
	Signup(ctx context.Context, name, email string) (string, error)
	Unregister(ctx context.Context, name, email string) error
}

// Outcome is the result of a mutating action.
type Outcome struct {
	Text string
	Kind Kind
	// Changed signals that the activity data may have changed and the
	// listing should be fetched again.
	Changed bool
	// ClearForm is set when the signup form should be reset.
	ClearForm bool
	Err       error
}

// Controller runs the board's actions against a Service. Its methods hold no
// state and may be called from any goroutine.
type Controller struct {
	svc Service
	log zerolog.Logger
}

// New creates a Controller.
func New(svc Service, log zerolog.Logger) *Controller {
	return &Controller{svc: svc, log: log}
}

// Load fetches the activities and renders them. Failures are logged and
// rendered as FailedListing.
func (c *Controller) Load(ctx context.Context) Listing {
	activities, err := c.svc.ListActivities(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("fetch activities")
		return FailedListing()
	}
	return BuildListing(activities)
}

// Signup registers email for the named activity. The outcome always asks
// for a reload so availability stays current.
func (c *Controller) Signup(ctx context.Context, email, name string) Outcome {
	msg, err := c.svc.Signup(ctx, name, email)
	if err == nil {
		c.log.Info().Str("activity", name).Str("email", email).Msg("signed up")
		return Outcome{Text: msg, Kind: KindSuccess, Changed: true, ClearForm: true}
	}

	out := Outcome{Kind: KindError, Changed: true, Err: err}
	if se, ok := client.AsStatusError(err); ok {
		out.Text = se.Detail
		if out.Text == "" {
			out.Text = GenericErrorText
		}
		c.log.Warn().Err(err).Str("activity", name).Msg("signup rejected")
		return out
	}

	c.log.Error().Err(err).Str("activity", name).Msg("sign up")
	out.Text = SignupFailedText
	return out
}

// Unregister removes email from the named activity. There is no
// confirmation and no retry.
func (c *Controller) Unregister(ctx context.Context, name, email string) Outcome {
	err := c.svc.Unregister(ctx, name, email)
	if err == nil {
		c.log.Info().Str("activity", name).Str("email", email).Msg("unregistered")
		return Outcome{Text: UnregisteredText, Kind: KindSuccess, Changed: true}
	}

	if _, ok := client.AsStatusError(err); ok {
		c.log.Warn().Err(err).Str("activity", name).Msg("unregister rejected")
		return Outcome{Text: UnregisterFailedText, Kind: KindError, Err: err}
	}

	c.log.Error().Err(err).Str("activity", name).Msg("unregister participant")
	return Outcome{Text: UnregisterErrorText, Kind: KindError, Err: err}
}
