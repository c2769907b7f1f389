// Package tui implements the Bubble Tea TUI for the activity board.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/styles"
)

// Options configures the TUI behavior.
type Options struct {
	ServerURL string // shown in the footer
}

// Model is the main Bubble Tea model for the board.
type Model struct {
	ctrl *board.Controller
	opts Options
	keys keyMap
	help help.Model

	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int
	quitting bool

	// Listing state
	listing  board.Listing
	loaded   bool
	loading  bool
	seq      board.Sequencer
	cursor   int   // index into listing.Rows()
	rowLines []int // viewport line of each row

	// Banner
	banner         board.Banner
	bannerToken    uint64
	bannerDuration time.Duration

	// Theme
	theme board.Theme

	// Signup form
	form       *SignupForm
	formValues SignupValues
}

// New creates the board model. The controller is the only way the model
// reaches the service.
func New(ctrl *board.Controller, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorBlue)

	vp := viewport.New(80, 10)

	return Model{
		ctrl:           ctrl,
		opts:           opts,
		keys:           defaultKeyMap(),
		help:           help.New(),
		viewport:       vp,
		spinner:        s,
		listing:        board.Listing{Options: []board.Option{{Label: board.PlaceholderOption}}},
		bannerDuration: board.BannerDuration,
	}
}

// Init starts the spinner and requests the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, requestLoad)
}

// palette returns the styles for the current theme. Root, header and every
// section switch together.
func (m Model) palette() styles.Palette {
	if m.theme.Dark() {
		return styles.Dark()
	}
	return styles.Light()
}

// startLoad tags a new fetch and returns the command that performs it.
func (m *Model) startLoad() tea.Cmd {
	m.loading = true
	return loadActivities(m.ctrl, m.seq.Next())
}

// showBanner displays the outcome text and schedules its hide.
func (m *Model) showBanner(text string, kind board.Kind) tea.Cmd {
	m.bannerToken = m.banner.Show(text, kind)
	return hideBannerAfter(m.bannerToken, m.bannerDuration)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.refreshContent()
		return m, nil

	case loadRequestedMsg, dataChangedMsg:
		cmd := m.startLoad()
		return m, cmd

	case activitiesLoadedMsg:
		if !m.seq.IsLatest(msg.seq) {
			// superseded by a newer fetch
			return m, nil
		}
		m.loading = false
		m.loaded = true
		m.listing = msg.listing
		m.clampCursor()
		m.refreshContent()
		return m, nil

	case actionDoneMsg:
		cmds := []tea.Cmd{m.showBanner(msg.outcome.Text, msg.outcome.Kind)}
		if msg.outcome.ClearForm {
			m.formValues = SignupValues{}
		}
		if msg.outcome.Changed {
			cmds = append(cmds, emitDataChanged)
		}
		return m, tea.Batch(cmds...)

	case hideBannerMsg:
		m.banner.Hide(msg.token)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQt) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.form != nil {
		if key.Matches(msg, m.keys.Close) {
			m.formValues = m.form.Values()
			m.form = nil
			m.resize()
			return m, nil
		}
		return m.updateForm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Remove):
		rows := m.listing.Rows()
		if m.cursor < len(rows) {
			return m, removeParticipant(m.ctrl, rows[m.cursor])
		}
	case key.Matches(msg, m.keys.Signup):
		m.form = NewSignupForm(m.listing.Options, m.formValues)
		m.resize()
		return m, m.form.Form().Init()
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.refreshContent()
	case key.Matches(msg, m.keys.Reload):
		cmd := m.startLoad()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateForm routes a message to the signup form and submits it once
// completed.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form.form = f
	}

	if m.form.Completed() {
		values := m.form.Values()
		m.formValues = values
		m.form = nil
		m.resize()
		return m, submitSignup(m.ctrl, values)
	}

	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	rows := len(m.listing.Rows())
	if rows == 0 {
		return
	}
	m.cursor += delta
	m.clampCursor()
	m.refreshContent()
}

func (m *Model) clampCursor() {
	rows := len(m.listing.Rows())
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refreshContent re-renders the listing into the viewport and keeps the
// selected row visible.
func (m *Model) refreshContent() {
	content, rowLines := renderListing(m.listing, m.palette(), m.cursor, m.viewport.Width)
	m.rowLines = rowLines
	m.viewport.SetContent(content)

	if m.cursor >= len(rowLines) {
		return
	}
	line := rowLines[m.cursor]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// resize fits the viewport between the header and the signup section.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// header (4) + banner (1) + section borders (4) + section titles (2) +
	// signup body + help
	reserved := 11 + lipgloss.Height(m.signupBody()) + lipgloss.Height(m.help.View(m.keys))
	h := m.height - reserved
	if h < 3 {
		h = 3
	}

	m.viewport.Width = m.width - 4
	m.viewport.Height = h
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.palette()
	width := m.width
	if width == 0 {
		width = 80
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		p.Header.Render(styles.Banner),
		"  ",
		p.ToggleHint.Render(m.theme.Label()),
	)

	bannerLine := ""
	if m.banner.Visible {
		style := p.Success
		if m.banner.Kind == board.KindError {
			style = p.Error
		}
		bannerLine = style.Render(m.banner.Text)
	}

	var list string
	if !m.loaded {
		list = m.spinner.View() + " " + loadingLabel
	} else {
		list = m.viewport.View()
	}

	sectionWidth := width - 2
	activities := p.Section.Width(sectionWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, p.Title.Render("Available Activities"), list),
	)
	signup := p.Section.Width(sectionWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, p.Title.Render("Sign Up for an Activity"), m.signupBody()),
	)

	footer := m.help.View(m.keys)
	if m.opts.ServerURL != "" && !m.help.ShowAll {
		footer += p.Muted.Render("  " + iconBullet + " " + m.opts.ServerURL)
	}

	return p.Root.Render(lipgloss.JoinVertical(lipgloss.Left, header, bannerLine, activities, signup, footer))
}

func (m Model) signupBody() string {
	if m.form != nil {
		return m.form.View()
	}
	return m.palette().Muted.Render("Press s to sign up a student.")
}
