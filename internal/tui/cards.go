package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/styles"
)

// Icons and symbols.
const (
	iconRemove   = "✕"
	iconCursor   = "▸"
	iconBullet   = "•"
	loadingLabel = "Loading activities..."
)

// renderListing renders every card of l. It also returns the line index of
// each participant row, in Rows() order, so the viewport can follow the
// selection.
func renderListing(l board.Listing, p styles.Palette, selected, width int) (string, []int) {
	if l.Failure != "" {
		return p.Muted.Render(l.Failure), nil
	}
	if len(l.Cards) == 0 {
		return p.Muted.Render("No activities available."), nil
	}

	var (
		lines    []string
		rowLines []int
		row      int
	)

	wrap := lipgloss.NewStyle()
	if width > 4 {
		wrap = wrap.Width(width - 2)
	}

	for i, card := range l.Cards {
		if i > 0 {
			lines = append(lines, "")
		}

		if card.Full {
			lines = append(lines, p.Full.Render(card.Title()))
			continue
		}

		lines = append(lines, p.Title.Render(card.Title()))
		lines = append(lines, strings.Split(wrap.Render(card.Description), "\n")...)
		lines = append(lines, p.Muted.Render("Schedule: ")+card.Schedule)
		lines = append(lines, p.Muted.Render("Availability: ")+card.Availability())

		if len(card.Participants) == 0 {
			lines = append(lines, p.Muted.Render(board.NoParticipantsText))
			continue
		}

		lines = append(lines, p.Muted.Render("Participants:"))
		for _, participant := range card.Participants {
			rowLines = append(rowLines, len(lines))
			lines = append(lines, renderRow(participant, p, row == selected))
			row++
		}
	}

	return strings.Join(lines, "\n"), rowLines
}

func renderRow(r board.ParticipantRow, p styles.Palette, selected bool) string {
	if selected {
		return p.Selected.Render(iconCursor+" "+r.Email) + " " + p.Remove.Render(iconRemove)
	}
	return "  " + iconBullet + " " + r.Email + " " + p.Remove.Render(iconRemove)
}
