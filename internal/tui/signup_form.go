package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/core/validate"
	"github.com/hay-kot/activityboard/internal/styles"
)

// SignupValues are the contents of the signup form. They survive a failed
// submission and are cleared after a successful one.
type SignupValues struct {
	Email    string
	Activity string
}

// SignupForm wraps a huh.Form with an email input and an activity select.
type SignupForm struct {
	form   *huh.Form
	values *SignupValues
}

// NewSignupForm creates a signup form prefilled with values. The select
// offers the placeholder followed by every open activity in listing order.
// A prefilled activity that is no longer offered falls back to the
// placeholder.
func NewSignupForm(options []board.Option, values SignupValues) *SignupForm {
	f := &SignupForm{values: &values}

	opts := make([]huh.Option[string], 0, len(options))
	offered := false
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
		if o.Value == values.Activity {
			offered = true
		}
	}
	if !offered {
		f.values.Activity = ""
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student Email").
				Placeholder("your-email@mergington.edu").
				Value(&f.values.Email).
				Validate(validate.Email),
			huh.NewSelect[string]().
				Title("Activity").
				Options(opts...).
				Value(&f.values.Activity).
				Validate(validate.ActivityName),
		),
	).WithTheme(styles.FormTheme()).WithShowHelp(false)

	return f
}

// Form returns the underlying huh.Form for tea.Model integration.
func (f *SignupForm) Form() *huh.Form {
	return f.form
}

// Completed returns true once the form was submitted with valid values.
func (f *SignupForm) Completed() bool {
	return f.form.State == huh.StateCompleted
}

// Values returns the current form values.
func (f *SignupForm) Values() SignupValues {
	return *f.values
}

// View renders the form.
func (f *SignupForm) View() string {
	return f.form.View()
}
