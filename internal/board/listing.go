// Package board holds the activity board controller: building the rendered
// listing, the status banner, the theme and fetch sequencing. It has no
// terminal dependencies; internal/tui binds it to Bubble Tea.
package board

import (
	"fmt"

	"github.com/hay-kot/activityboard/internal/core/activity"
)

// Fixed texts shown by the board.
const (
	PlaceholderOption  = "-- Select an activity --"
	LoadFailedText     = "Failed to load activities. Please try again later."
	NoParticipantsText = "No participants yet."
)

// ParticipantRow is one participant line with its remove control. It carries
// everything the remove action needs.
type ParticipantRow struct {
	Activity string
	Email    string
}

// Card is the rendered form of one activity.
type Card struct {
	Name         string
	Full         bool
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []ParticipantRow
}

// Title returns the card heading. Full activities are marked.
func (c Card) Title() string {
	if c.Full {
		return c.Name + " (FULL)"
	}
	return c.Name
}

// Availability returns the spots-left line.
func (c Card) Availability() string {
	return fmt.Sprintf("%d spots left", c.SpotsLeft)
}

// Option is a selectable entry in the activity chooser.
type Option struct {
	Value string
	Label string
}

// Listing is a complete render of the board. A listing with a non-empty
// Failure has no cards and only the placeholder option.
type Listing struct {
	Cards   []Card
	Options []Option
	Failure string
}

// BuildListing renders activities in the order given. Full activities get a
// bare card and no option; the rest get full detail and an option.
func BuildListing(activities []activity.Activity) Listing {
	l := Listing{
		Cards:   make([]Card, 0, len(activities)),
		Options: []Option{{Value: "", Label: PlaceholderOption}},
	}

	for _, a := range activities {
		if a.IsFull() {
			l.Cards = append(l.Cards, Card{Name: a.Name, Full: true})
			continue
		}

		card := Card{
			Name:        a.Name,
			Description: a.Description,
			Schedule:    a.Schedule,
			SpotsLeft:   a.SpotsLeft(),
		}
		for _, p := range a.Participants {
			card.Participants = append(card.Participants, ParticipantRow{Activity: a.Name, Email: p})
		}

		l.Cards = append(l.Cards, card)
		l.Options = append(l.Options, Option{Value: a.Name, Label: a.Name})
	}

	return l
}

// FailedListing is the render shown when activities cannot be loaded.
func FailedListing() Listing {
	return Listing{
		Options: []Option{{Value: "", Label: PlaceholderOption}},
		Failure: LoadFailedText,
	}
}

// Rows returns every participant row in render order.
func (l Listing) Rows() []ParticipantRow {
	var rows []ParticipantRow
	for _, c := range l.Cards {
		rows = append(rows, c.Participants...)
	}
	return rows
}

// Choices returns the selectable options without the placeholder.
func (l Listing) Choices() []Option {
	if len(l.Options) <= 1 {
		return nil
	}
	return l.Options[1:]
}
