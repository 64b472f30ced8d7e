// Package page is the interactive journal page: a search box, an archived
// toggle and the filtered list of entries.
package page

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rcliao/journal-archive/internal/filter"
	"github.com/rcliao/journal-archive/internal/loader"
	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/render"
)

// State is what the body of the page shows.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StateList
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxCardWidth  = 96

	// header, tagline, blank, search, toggle, blank, footer, help
	chromeHeight = 9

	LoadingText = "Loading entries..."
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#89ddff"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a8fa8"))
	toggleOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#acfab4"))
)

type loadedMsg struct {
	entries []model.Entry
}

type loadFailedMsg struct {
	err error
}

// Model owns the page state: the loaded entries, the query, the archived
// toggle and whether the load is still outstanding.
type Model struct {
	source loader.Source
	log    *zap.Logger

	entries      []model.Entry
	visible      []model.Entry
	loading      bool
	showArchived bool

	search   textinput.Model
	viewport viewport.Model

	width    int
	height   int
	quitting bool
}

// New creates the page for a source. Nothing is loaded until Init.
func New(src loader.Source, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	in := textinput.New()
	in.Placeholder = "Search entries by keyword..."
	in.Prompt = "Search: "
	in.CharLimit = 256
	in.Focus()

	m := Model{
		source:   src,
		log:      log,
		loading:  true,
		search:   in,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refresh()
	return m
}

// Init issues the one load for the page's lifetime.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

func (m Model) load() tea.Cmd {
	src := m.source
	return func() tea.Msg {
		entries, err := src.Load(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{entries: entries}
	}
}

// Query is the current search text.
func (m Model) Query() string { return m.search.Value() }

// ShowArchived reports the archived toggle.
func (m Model) ShowArchived() bool { return m.showArchived }

// Loading reports whether the load is outstanding.
func (m Model) Loading() bool { return m.loading }

// Visible returns the entries currently shown.
func (m Model) Visible() []model.Entry { return m.visible }

// State reports what the body shows. A failed load is indistinguishable
// from an empty collection.
func (m Model) State() State {
	switch {
	case m.loading:
		return StateLoading
	case len(m.visible) == 0:
		return StateEmpty
	default:
		return StateList
	}
}

// refresh recomputes the visible set and the list content.
func (m *Model) refresh() {
	m.visible = filter.Apply(m.entries, filter.Params{
		Query:        m.search.Value(),
		ShowArchived: m.showArchived,
	})

	cardWidth := m.width - 2
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	cards := make([]string, 0, len(m.visible))
	for _, e := range m.visible {
		cards = append(cards, render.Card(e, cardWidth))
	}
	m.viewport.SetContent(strings.Join(cards, "\n"))
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-len(m.search.Prompt)-1, 1)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.refresh()
		return m, nil

	case loadedMsg:
		m.entries = msg.entries
		m.loading = false
		m.refresh()
		return m, nil

	case loadFailedMsg:
		m.log.Error("error loading entries", zap.String("source", m.source.String()), zap.Error(msg.err))
		m.entries = nil
		m.loading = false
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.showArchived = !m.showArchived
			m.refresh()
			return m, nil
		case "esc":
			if m.search.Value() != "" {
				m.search.Reset()
				m.refresh()
			}
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "pgup":
			m.viewport.ViewUp()
			return m, nil
		case "pgdown":
			m.viewport.ViewDown()
			return m, nil
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.refresh()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal Archive"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("A collection of thoughts, moments, and reflections"))
	b.WriteString("\n\n")

	b.WriteString(m.search.View())
	b.WriteString("\n")
	toggle := "[ ]"
	if m.showArchived {
		toggle = toggleOnStyle.Render("[x]")
	}
	b.WriteString(toggle + " Show archived entries\n\n")

	switch m.State() {
	case StateLoading:
		b.WriteString(mutedStyle.Render(LoadingText))
		b.WriteString("\n")
	case StateEmpty:
		b.WriteString(render.EmptyTitle)
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(render.EmptyHint))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(render.Count(len(m.visible))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("type to search • tab archived • esc clear • ↑/↓ scroll • ctrl+c quit"))
	return b.String()
}

// Run starts the page on the alternate screen and blocks until it exits.
func Run(src loader.Source, log *zap.Logger) error {
	p := tea.NewProgram(New(src, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
