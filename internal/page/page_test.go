package page

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rcliao/journal-archive/internal/model"
)

type fakeSource struct {
	entries []model.Entry
	err     error
	calls   int
}

func (f *fakeSource) Load(context.Context) ([]model.Entry, error) {
	f.calls++
	return f.entries, f.err
}

func (f *fakeSource) String() string { return "fake" }

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sample() []model.Entry {
	return []model.Entry{
		{ID: 1, Title: "Morning Walk", Date: model.ParseDate("2024-03-15"), Body: "Felt calm today", Mood: "Calm"},
		{ID: 2, Title: "Deadline", Date: model.ParseDate("2024-03-10"), Body: "Pushed hard", Mood: "Productive", Archived: true},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// loaded runs the page's load command and feeds the result back.
func loaded(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, m.load()())
}

func TestInitialState(t *testing.T) {
	m := New(&fakeSource{entries: sample()}, nil)
	if !m.Loading() || m.State() != StateLoading {
		t.Fatal("expected page to start loading")
	}
	if m.Query() != "" || m.ShowArchived() {
		t.Errorf("expected empty query and archived hidden")
	}
	view := stripANSI(m.View())
	for _, want := range []string{"Journal Archive", "A collection of thoughts, moments, and reflections", LoadingText, "Show archived entries"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "No entries found") {
		t.Errorf("loading page shows the empty state:\n%s", view)
	}
}

func TestLoadIssuedOnce(t *testing.T) {
	src := &fakeSource{entries: sample()}
	m := New(src, nil)
	if src.calls != 0 {
		t.Fatalf("New must not load, got %d calls", src.calls)
	}
	m = loaded(t, m)
	m = typeText(t, m, "walk")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_ = m.View()
	if src.calls != 1 {
		t.Errorf("expected one load, got %d", src.calls)
	}
}

func TestLoadedShowsUnarchived(t *testing.T) {
	m := loaded(t, New(&fakeSource{entries: sample()}, nil))
	if m.Loading() || m.State() != StateList {
		t.Fatalf("expected list state, got %v", m.State())
	}
	if got := m.Visible(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only entry 1, got %+v", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Morning Walk") || strings.Contains(view, "Deadline") {
		t.Errorf("unexpected view:\n%s", view)
	}
	if !strings.Contains(view, "1 entry displayed") {
		t.Errorf("expected footer count:\n%s", view)
	}
}

func TestToggleArchived(t *testing.T) {
	m := loaded(t, New(&fakeSource{entries: sample()}, nil))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.ShowArchived() || len(m.Visible()) != 2 {
		t.Fatalf("expected both entries after toggle, got %+v", m.Visible())
	}
	if !strings.Contains(stripANSI(m.View()), "2 entries displayed") {
		t.Errorf("expected count of 2:\n%s", stripANSI(m.View()))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShowArchived() || len(m.Visible()) != 1 {
		t.Errorf("expected archived hidden again, got %+v", m.Visible())
	}
}

func TestSearch(t *testing.T) {
	m := loaded(t, New(&fakeSource{entries: sample()}, nil))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "PUSHED")
	if m.Query() != "PUSHED" {
		t.Fatalf("expected query to follow typing, got %q", m.Query())
	}
	if got := m.Visible(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected entry 2 for body match, got %+v", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Query() != "" || len(m.Visible()) != 2 {
		t.Errorf("esc should clear the query, got %q %+v", m.Query(), m.Visible())
	}
}

func TestSearchArchivedHiddenByToggle(t *testing.T) {
	m := loaded(t, New(&fakeSource{entries: sample()}, nil))
	m = typeText(t, m, "deadline")
	if m.State() != StateEmpty {
		t.Fatalf("archived match must stay hidden, got %+v", m.Visible())
	}
	view := stripANSI(m.View())
	for _, want := range []string{"No entries found", "Try adjusting your search or toggle archived entries", "0 entries displayed"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestLoadFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	m := New(&fakeSource{err: errors.New("connection refused")}, zap.New(core))
	m = loaded(t, m)

	if m.Loading() || m.State() != StateEmpty {
		t.Fatalf("expected empty state after failure, got %v", m.State())
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "No entries found") {
		t.Errorf("expected empty state:\n%s", view)
	}
	if strings.Contains(view, "connection refused") {
		t.Errorf("failure detail leaked into the page:\n%s", view)
	}

	entries := logs.FilterMessage("error loading entries").All()
	if len(entries) != 1 {
		t.Fatalf("expected one logged failure, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "connection refused" {
		t.Errorf("expected logged error, got %v", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "x")
	if m.State() != StateEmpty {
		t.Errorf("failed page must stay empty, got %v", m.State())
	}
}

func TestEmptyCollection(t *testing.T) {
	m := loaded(t, New(&fakeSource{entries: []model.Entry{}}, nil))
	if m.State() != StateEmpty {
		t.Fatalf("expected empty state, got %v", m.State())
	}
}

func TestWindowResize(t *testing.T) {
	m := loaded(t, New(&fakeSource{entries: sample()}, nil))
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})
	if !strings.Contains(stripANSI(m.View()), "Morning Walk") {
		t.Errorf("expected entry after resize:\n%s", stripANSI(m.View()))
	}
}

func TestQuit(t *testing.T) {
	m := New(&fakeSource{}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Errorf("expected blank view after quit")
	}
}
