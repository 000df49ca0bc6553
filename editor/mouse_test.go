package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tokenfield/tokens"
)

func TestMouse_ChipAndBackground(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("alpha", "beta", "gamma")})
	m = m.SetSize(20, 0)

	// alpha 0..4, beta 6..9, gamma 11..15, draft wraps to row 1.
	m = click(m, 7, 0)
	assertPosition(t, m, 1)

	// alpha 0..4, draft 6, beta 8..11, gamma 13..17.
	m = click(m, 19, 0)
	assertPosition(t, m, tokens.Trailing)

	m = click(m, 5, 0)
	assertPosition(t, m, 1)

	m = click(m, 0, 0)
	assertPosition(t, m, 0)
}

func TestMouse_BackgroundAcrossWrappedRows(t *testing.T) {
	// aaaa 0..3, bbbb 5..8 on row 0; cccc 0..3, dddd 5..8 on row 1; draft on row 2.
	tests := []struct {
		name string
		x, y int
		want tokens.Position
	}{
		{name: "gap after cccc", x: 4, y: 1, want: 3},
		{name: "end of row 0", x: 11, y: 0, want: 2},
		{name: "end of row 1", x: 11, y: 1, want: tokens.Trailing},
		{name: "chip on row 1", x: 6, y: 1, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPlain(Config{Tokens: tokens.NewTokens("aaaa", "bbbb", "cccc", "dddd")})
			m = m.SetSize(12, 0)
			m = click(m, tt.x, tt.y)
			assertPosition(t, m, tt.want)
		})
	}
}

func TestMouse_DraftPressPlacesCaret(t *testing.T) {
	m := newPlain(Config{})
	m = m.SetSize(20, 0)
	m = typeText(m, "hello")

	m = click(m, 2, 0)
	if got := m.Draft().Cursor(); got != 2 {
		t.Fatalf("cursor: got %d, want %d", got, 2)
	}
	m = click(m, 15, 0)
	if got := m.Draft().Cursor(); got != 5 {
		t.Fatalf("cursor past text: got %d, want %d", got, 5)
	}
}

func TestMouse_PressFocuses(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a", "b")})
	m = m.SetSize(20, 0)
	m = m.Blur()

	m = click(m, 0, 0)
	if !m.Focused() {
		t.Fatalf("focused after press: got false, want true")
	}
	assertPosition(t, m, 0)
}

func TestMouse_IgnoresOutOfBounds(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a", "b")})
	m = m.SetSize(10, 0)

	m = click(m, 10, 0)
	m = click(m, -1, 0)
	assertPosition(t, m, tokens.Trailing)
}

func TestMouse_SuggestionRowSelects(t *testing.T) {
	m := newPlain(Config{Suggestions: []tokens.Token{
		{ID: "ada@example.com", Label: "Ada Lovelace"},
		{ID: "alan@example.com", Label: "Alan Turing"},
	}})
	m = m.SetSize(20, 0)
	m = typeText(m, "al")

	// Field is one row; the list starts below it.
	m = click(m, 0, 1)
	assertDraft(t, m, "Alan Turing")
	if got := m.Field().SuggestionState().Selected; got != 0 {
		t.Fatalf("selected: got %d, want %d", got, 0)
	}
}

func TestMouse_OversizedChipStaysInItsRow(t *testing.T) {
	fresh := func() Model {
		m := newPlain(Config{Tokens: tokens.NewTokens("abcdefghij", "b")})
		return m.SetSize(6, 0)
	}
	m := fresh()

	for i, line := range viewLines(m) {
		if w := lipgloss.Width(line); w > 6 {
			t.Fatalf("row %d width: got %d, want <= 6 (%q)", i, w, line)
		}
	}

	if got, want := m.layout.chipEdges(), []int{0, 6}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("chip edges: got %v, want %v", got, want)
	}

	m = click(m, 5, 0)
	assertPosition(t, m, 0)

	m = click(fresh(), 0, 1)
	assertPosition(t, m, 1)
}

func TestLayout_LinearClampsToRow(t *testing.T) {
	l := layout{width: 6}
	if got, want := l.linear(1, 9), 11; got != want {
		t.Fatalf("linear(1, 9): got %d, want %d", got, want)
	}
	if got, want := l.linear(1, 2), 8; got != want {
		t.Fatalf("linear(1, 2): got %d, want %d", got, want)
	}
	if got, want := (layout{}).linear(0, 40), 40; got != want {
		t.Fatalf("unbounded linear: got %d, want %d", got, want)
	}
}
