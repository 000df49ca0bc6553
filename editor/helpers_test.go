package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tokenfield/tokens"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

// plainStyle renders every element as its bare text so rows can be compared
// cell by cell.
func plainStyle() *Style {
	p := lipgloss.NewStyle()
	return &Style{
		Chip:               p,
		ChipActive:         p,
		Text:               p,
		Selection:          p,
		Cursor:             p,
		Placeholder:        p,
		Suggestion:         p,
		SuggestionSelected: p,
	}
}

func newPlain(cfg Config) Model {
	cfg.Style = plainStyle()
	return New(cfg)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}})
			continue
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, k tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: k})
	return m
}

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

func assertTokens(t *testing.T, m Model, want ...string) {
	t.Helper()
	got := m.Field().IDs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("tokens: got %v, want %v", got, want)
	}
}

func assertPosition(t *testing.T, m Model, want tokens.Position) {
	t.Helper()
	if got := m.Field().Position(); got != want {
		t.Fatalf("position: got %v, want %v", got, want)
	}
}

func assertDraft(t *testing.T, m Model, want string) {
	t.Helper()
	if got := m.Draft().Text(); got != want {
		t.Fatalf("draft: got %q, want %q", got, want)
	}
}

func viewLines(m Model) []string {
	return strings.Split(m.View(), "\n")
}

func trimmedLines(m Model) []string {
	lines := viewLines(m)
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
