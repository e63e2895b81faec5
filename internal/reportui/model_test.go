package reportui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordstats/internal/textstats"
)

func newSizedModel(t *testing.T, text string) *Model {
	t.Helper()
	m := NewModel(textstats.Analyze([]byte(text)), "test")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewEmptyBeforeResize(t *testing.T) {
	m := NewModel(textstats.Analyze(nil), "empty")
	if m.View() != "" {
		t.Fatalf("expected empty view before window size")
	}
}

func TestViewFitsWindow(t *testing.T) {
	m := newSizedModel(t, "The Quick fox jumps. The fox runs!")
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	if !strings.Contains(view, "Overview") || !strings.Contains(view, "Source: test") {
		t.Fatalf("expected tabs and source in view:\n%s", view)
	}
	if !strings.Contains(view, "quick") {
		t.Fatalf("expected longest word card in overview:\n%s", view)
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newSizedModel(t, "a b")
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabDetails {
		t.Fatalf("expected wrap to details tab, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabWords {
		t.Fatalf("expected words tab, got %d", m.activeTab)
	}
	if !m.wordTable.Focused() {
		t.Fatalf("expected table focus on words tab")
	}
}

func TestFilterWords(t *testing.T) {
	m := newSizedModel(t, "apple banana apple cherry grape")
	m.activeTab = tabWords
	if len(m.wordTable.Rows()) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(m.wordTable.Rows()))
	}
	m.applyFilter(" AP ")
	rows := m.wordTable.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 filtered rows, got %d", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "apple" || rows[1][0] != "4" || rows[1][1] != "grape" {
		t.Fatalf("unexpected filtered rows: %v", rows)
	}
	if !strings.Contains(m.View(), "Filter: ap") {
		t.Fatalf("expected filter summary in view")
	}
}

func TestFilterModeKeys(t *testing.T) {
	m := newSizedModel(t, "apple banana")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.filterMode {
		t.Fatalf("filter should only open on the words tab")
	}
	m.moveTab(1)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ban")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode || m.filter != "ban" || len(m.wordTable.Rows()) != 1 {
		t.Fatalf("unexpected filter state: mode=%v filter=%q rows=%d", m.filterMode, m.filter, len(m.wordTable.Rows()))
	}
}

func TestQuitKey(t *testing.T) {
	m := newSizedModel(t, "a")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateLine("abc", 2); got != "ab" {
		t.Fatalf("unexpected short truncation %q", got)
	}
	if got := truncateLine("abc", 0); got != "abc" {
		t.Fatalf("expected unchanged line, got %q", got)
	}
}
