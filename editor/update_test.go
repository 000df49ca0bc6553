package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tokenfield/tokens"
)

func TestUpdate_TypeAndCommit(t *testing.T) {
	m := newPlain(Config{})

	m = typeText(m, "go")
	assertDraft(t, m, "go")
	m = press(m, tea.KeyEnter)
	assertTokens(t, m, "go")
	assertDraft(t, m, "")
	assertPosition(t, m, tokens.Trailing)

	m = typeText(m, "rust ")
	assertTokens(t, m, "go", "rust")
	assertDraft(t, m, "")
}

func TestUpdate_CustomSeparator(t *testing.T) {
	m := newPlain(Config{Separator: ","})

	m = typeText(m, "new york,")
	assertTokens(t, m, "new york")

	m = typeText(m, "a")
	m = press(m, tea.KeyTab)
	assertDraft(t, m, "a")
	assertTokens(t, m, "new york")
}

func TestUpdate_TabSeparator(t *testing.T) {
	m := newPlain(Config{Separator: "tab"})

	m = typeText(m, "a b")
	m = press(m, tea.KeyTab)
	assertTokens(t, m, "a b")
}

func TestUpdate_BlankCommitIsSwallowed(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a")})

	m = typeText(m, "  ")
	assertTokens(t, m, "a")
	m = press(m, tea.KeyEnter)
	assertTokens(t, m, "a")
}

func TestUpdate_BackspaceRemovesOnlyWhenDraftEmpty(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a", "b")})

	m = typeText(m, "x")
	m = press(m, tea.KeyBackspace)
	assertDraft(t, m, "")
	assertTokens(t, m, "a", "b")

	m = press(m, tea.KeyBackspace)
	assertTokens(t, m, "a")
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyBackspace)
	assertTokens(t, m)
	assertPosition(t, m, tokens.Trailing)
}

func TestUpdate_InlineInsert(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a", "c")})

	m = press(m, tea.KeyLeft)
	assertPosition(t, m, 1)

	m = typeText(m, "b")
	m = press(m, tea.KeyEnter)
	assertTokens(t, m, "a", "b", "c")
	assertPosition(t, m, 2)

	m = press(m, tea.KeyDelete)
	assertTokens(t, m, "a", "b")
	assertPosition(t, m, tokens.Trailing)
}

func TestUpdate_ArrowsEditDraftWhenNotEmpty(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a")})

	m = typeText(m, "xy")
	m = press(m, tea.KeyLeft)
	assertPosition(t, m, tokens.Trailing)
	if got := m.Draft().Cursor(); got != 1 {
		t.Fatalf("cursor: got %d, want %d", got, 1)
	}

	m = typeText(m, "z")
	assertDraft(t, m, "xzy")
}

func TestUpdate_ArrowRightLeavesInlineSlot(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a", "b")})

	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyLeft)
	assertPosition(t, m, 0)
	m = press(m, tea.KeyLeft)
	assertPosition(t, m, 0)

	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyRight)
	assertPosition(t, m, tokens.Trailing)
}

func TestUpdate_BlurAndFocusMessages(t *testing.T) {
	m := newPlain(Config{Tokens: tokens.NewTokens("a", "b")})

	m = press(m, tea.KeyLeft)
	m = typeText(m, "x")
	m, _ = m.Update(tea.BlurMsg{})
	if m.Focused() {
		t.Fatalf("focused after blur: got true, want false")
	}
	assertDraft(t, m, "")
	assertPosition(t, m, tokens.Trailing)

	m = typeText(m, "y")
	assertDraft(t, m, "")

	m, _ = m.Update(tea.FocusMsg{})
	m = typeText(m, "y")
	assertDraft(t, m, "y")
}

func TestUpdate_PasteInsertsLiterally(t *testing.T) {
	m := newPlain(Config{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b\nc"), Paste: true})
	assertDraft(t, m, "a b c")
	assertTokens(t, m)
}

func TestUpdate_Clipboard(t *testing.T) {
	cb := &memClipboard{s: "pasted"}
	m := newPlain(Config{Clipboard: cb})

	m = press(m, tea.KeyCtrlV)
	assertDraft(t, m, "pasted")

	m.Draft().SetSelection(0, 3)
	m = press(m, tea.KeyCtrlX)
	if cb.s != "pas" {
		t.Fatalf("clipboard after cut: got %q, want %q", cb.s, "pas")
	}
	assertDraft(t, m, "ted")
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := newPlain(Config{})

	m = typeText(m, "ab")
	m = press(m, tea.KeyCtrlZ)
	assertDraft(t, m, "a")
	m = press(m, tea.KeyCtrlY)
	assertDraft(t, m, "ab")
}

func TestUpdate_SuggestionsFillDraftAndCommitByID(t *testing.T) {
	m := newPlain(Config{Suggestions: []tokens.Token{
		{ID: "ada@example.com", Label: "Ada Lovelace"},
		{ID: "alan@example.com", Label: "Alan Turing"},
	}})

	m = typeText(m, "a")
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	assertDraft(t, m, "Alan Turing")
	m = press(m, tea.KeyUp)
	assertDraft(t, m, "Ada Lovelace")

	m = press(m, tea.KeyEnter)
	assertTokens(t, m, "ada@example.com")
	if got := m.Tokens()[0].Label; got != "Ada Lovelace" {
		t.Fatalf("label: got %q, want %q", got, "Ada Lovelace")
	}
}

func TestUpdate_OnChangeOncePerEffectiveMessage(t *testing.T) {
	var events []ChangeEvent
	m := newPlain(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	m = typeText(m, "go")
	if len(events) != 2 {
		t.Fatalf("events after typing: got %d, want %d", len(events), 2)
	}
	if ev := events[1]; ev.Draft != "go" || !ev.Flexible || ev.HasChange {
		t.Fatalf("typing event: got %+v", ev)
	}

	m = press(m, tea.KeyEnter)
	if len(events) != 3 {
		t.Fatalf("events after commit: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if !ev.HasChange || ev.Change.Kind != tokens.ChangeInsert || ev.Draft != "" {
		t.Fatalf("commit event: got %+v", ev)
	}
	if len(ev.Tokens) != 1 || ev.Tokens[0].ID != "go" {
		t.Fatalf("commit event tokens: got %v, want [go]", ev.Tokens)
	}

	m = press(m, tea.KeyRight)
	m, _ = m.Update(nil)
	if len(events) != 3 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 3)
	}

	m = press(m, tea.KeyLeft)
	if len(events) != 4 || events[3].Position != 0 || events[3].Change.Kind != tokens.ChangeMove {
		t.Fatalf("move event: got %+v", events[len(events)-1])
	}

	m = typeText(m, "abc")
	if ev := events[len(events)-1]; ev.DraftWidth != 4 || ev.Flexible {
		t.Fatalf("inline draft width: got %d flexible=%v, want 4 flexible=false", ev.DraftWidth, ev.Flexible)
	}
	if w, flexible := m.DraftWidth(); w != 4 || flexible {
		t.Fatalf("DraftWidth: got %d %v, want 4 false", w, flexible)
	}
}

func TestUpdate_HostMutationsAreReported(t *testing.T) {
	var events []ChangeEvent
	m := newPlain(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	m.Field().SetValue("a b")
	m, _ = m.Update(nil)
	if len(events) != 1 || events[0].Change.Kind != tokens.ChangeReset {
		t.Fatalf("host mutation: got %+v", events)
	}
	assertTokens(t, m, "a", "b")
}
