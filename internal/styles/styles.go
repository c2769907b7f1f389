// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorRed    = lipgloss.Color("#f7768e")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
	ColorNight  = lipgloss.Color("#1a1b26")
	ColorStorm  = lipgloss.Color("#24283b")

	// Tokyo Night Day, for the light theme.
	ColorDayInk    = lipgloss.Color("#3760bf")
	ColorDayPaper  = lipgloss.Color("#e1e2e7")
	ColorDayPanel  = lipgloss.Color("#d0d5e3")
	ColorDayMuted  = lipgloss.Color("#848cb5")
	ColorDayGreen  = lipgloss.Color("#587539")
	ColorDayRed    = lipgloss.Color("#f52a65")
	ColorDayAccent = lipgloss.Color("#2e7de9")
)

// Banner ASCII art for the header.
const Banner = `
 ╔╦╗╔═╗╦═╗╔═╗╦╔╗╔╔═╗╔╦╗╔═╗╔╗╔
 ║║║║╣ ╠╦╝║ ╦║║║║║ ╦ ║ ║ ║║║║
 ╩ ╩╚═╝╩╚═╚═╝╩╝╚╝╚═╝ ╩ ╚═╝╝╚╝`

// Palette is the set of styles the board applies to its root, header and
// sections for one theme.
type Palette struct {
	Name string

	Root    lipgloss.Style
	Header  lipgloss.Style
	Section lipgloss.Style

	Title      lipgloss.Style
	Muted      lipgloss.Style
	Full       lipgloss.Style
	Selected   lipgloss.Style
	Remove     lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	ToggleHint lipgloss.Style
}

// Light returns the default palette.
func Light() Palette {
	return Palette{
		Name:       "light",
		Root:       lipgloss.NewStyle().Foreground(ColorDayInk),
		Header:     lipgloss.NewStyle().Foreground(ColorDayAccent).Bold(true).PaddingLeft(1),
		Section:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorDayMuted).Padding(0, 1),
		Title:      lipgloss.NewStyle().Foreground(ColorDayAccent).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(ColorDayMuted),
		Full:       lipgloss.NewStyle().Foreground(ColorDayMuted).Strikethrough(true),
		Selected:   lipgloss.NewStyle().Foreground(ColorDayAccent).Bold(true),
		Remove:     lipgloss.NewStyle().Foreground(ColorDayRed),
		Success:    lipgloss.NewStyle().Foreground(ColorDayPaper).Background(ColorDayGreen).Padding(0, 1),
		Error:      lipgloss.NewStyle().Foreground(ColorDayPaper).Background(ColorDayRed).Padding(0, 1),
		ToggleHint: lipgloss.NewStyle().Foreground(ColorDayInk).Background(ColorDayPanel).Padding(0, 1),
	}
}

// Dark returns the dark-mode palette.
func Dark() Palette {
	return Palette{
		Name:       "dark",
		Root:       lipgloss.NewStyle().Foreground(ColorWhite),
		Header:     lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).PaddingLeft(1),
		Section:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBlue).Padding(0, 1),
		Title:      lipgloss.NewStyle().Foreground(ColorBlue).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(ColorGray),
		Full:       lipgloss.NewStyle().Foreground(ColorGray).Strikethrough(true),
		Selected:   lipgloss.NewStyle().Foreground(ColorYellow).Bold(true),
		Remove:     lipgloss.NewStyle().Foreground(ColorRed),
		Success:    lipgloss.NewStyle().Foreground(ColorNight).Background(ColorGreen).Padding(0, 1),
		Error:      lipgloss.NewStyle().Foreground(ColorNight).Background(ColorRed).Padding(0, 1),
		ToggleHint: lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorStorm).Padding(0, 1),
	}
}

// FormTheme returns the huh theme used by board forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorGray)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorBlue)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorBlue)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorBlue)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorRed)
	t.Blurred = t.Focused
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorGray).Bold(false)

	return t
}
