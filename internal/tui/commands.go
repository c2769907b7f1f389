package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/activityboard/internal/board"
)

// loadRequestedMsg asks for the first load when the program starts.
type loadRequestedMsg struct{}

// dataChangedMsg is emitted after a mutation that may have changed the
// activities. Its single handler reloads the listing.
type dataChangedMsg struct{}

// activitiesLoadedMsg carries a rendered listing tagged with the fetch that
// produced it.
type activitiesLoadedMsg struct {
	seq     uint64
	listing board.Listing
}

// actionDoneMsg is sent when a signup or removal finishes.
type actionDoneMsg struct {
	outcome board.Outcome
}

// hideBannerMsg is sent when a banner's display time is up.
type hideBannerMsg struct {
	token uint64
}

func requestLoad() tea.Msg {
	return loadRequestedMsg{}
}

func emitDataChanged() tea.Msg {
	return dataChangedMsg{}
}

// loadActivities returns a command that fetches and renders the activities.
func loadActivities(ctrl *board.Controller, seq uint64) tea.Cmd {
	return func() tea.Msg {
		return activitiesLoadedMsg{seq: seq, listing: ctrl.Load(context.Background())}
	}
}

// submitSignup returns a command that signs email up for the activity.
func submitSignup(ctrl *board.Controller, values SignupValues) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{outcome: ctrl.Signup(context.Background(), values.Email, values.Activity)}
	}
}

// removeParticipant returns a command that unregisters the row's participant.
func removeParticipant(ctrl *board.Controller, row board.ParticipantRow) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{outcome: ctrl.Unregister(context.Background(), row.Activity, row.Email)}
	}
}

// hideBannerAfter schedules hiding the banner shown with token.
func hideBannerAfter(token uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return hideBannerMsg{token: token}
	})
}
