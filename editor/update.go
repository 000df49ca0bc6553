package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tokenfield/draft"
	"github.com/iw2rmb/tokenfield/tokens"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events always insert literal text and never commit.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.draft.InsertText(string(msg.Runes))
		return m, nil
	}

	start, end := m.draft.Caret()
	res := m.field.HandleKey(tokens.KeyEvent{
		Key:        m.keyName(msg),
		CaretStart: start,
		CaretEnd:   end,
		Draft:      m.draft.Text(),
	})
	if res.Handled {
		m.apply(res)
		return m, nil
	}

	m.editDraft(msg)
	return m, nil
}

// keyName maps a key message to the name the field understands. Keys outside
// the field bindings keep their Bubble Tea name so a separator such as ","
// or "tab" still matches.
func (m Model) keyName(msg tea.KeyMsg) string {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Commit):
		return tokens.KeyEnter
	case key.Matches(msg, km.Backspace):
		return tokens.KeyBackspace
	case key.Matches(msg, km.Delete):
		return tokens.KeyDelete
	case key.Matches(msg, km.Left):
		return tokens.KeyArrowLeft
	case key.Matches(msg, km.Right):
		return tokens.KeyArrowRight
	case key.Matches(msg, km.SuggestNext):
		return tokens.KeyArrowDown
	case key.Matches(msg, km.SuggestPrev):
		return tokens.KeyArrowUp
	}
	return msg.String()
}

func (m Model) editDraft(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	d := m.draft

	switch {
	case key.Matches(msg, km.Left):
		d.Move(draft.Move{Unit: draft.MoveGrapheme, Dir: draft.DirLeft})
	case key.Matches(msg, km.Right):
		d.Move(draft.Move{Unit: draft.MoveGrapheme, Dir: draft.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		d.Move(draft.Move{Unit: draft.MoveGrapheme, Dir: draft.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		d.Move(draft.Move{Unit: draft.MoveGrapheme, Dir: draft.DirRight, Extend: true})
	case key.Matches(msg, km.WordLeft):
		d.Move(draft.Move{Unit: draft.MoveWord, Dir: draft.DirLeft})
	case key.Matches(msg, km.WordRight):
		d.Move(draft.Move{Unit: draft.MoveWord, Dir: draft.DirRight})
	case key.Matches(msg, km.Home):
		d.Move(draft.Move{Unit: draft.MoveLine, Dir: draft.DirHome})
	case key.Matches(msg, km.End):
		d.Move(draft.Move{Unit: draft.MoveLine, Dir: draft.DirEnd})

	case key.Matches(msg, km.Backspace):
		d.DeleteBackward()
	case key.Matches(msg, km.Delete):
		d.DeleteForward()

	case key.Matches(msg, km.Undo):
		_ = d.Undo()
	case key.Matches(msg, km.Redo):
		_ = d.Redo()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeySpace {
			d.InsertText(" ")
			return
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			d.InsertText(string(msg.Runes))
		}
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.draft.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.draft.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return
	}
	m.draft.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.draft.InsertText(s)
}
