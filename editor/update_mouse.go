package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tokenfield/tokens"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.height > 0 && isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if msg.X < 0 || msg.Y < 0 {
		return m, cmd
	}
	if m.width > 0 && msg.X >= m.width {
		return m, cmd
	}

	rows := m.fieldRows()
	if msg.Y >= rows {
		m.pressSuggestion(msg.Y - rows)
		return m, cmd
	}

	if !m.focused {
		m = m.Focus()
	}

	row := msg.Y
	if m.height > 0 {
		row += m.viewport.YOffset
	}
	it, ok := m.layout.hit(row, msg.X)
	switch {
	case ok && it.kind == itemChip:
		m.log.Debug("press", "target", "chip", "token", it.id)
		m.apply(m.field.HandlePointer(tokens.PointerEvent{Target: tokens.TargetChip, TokenID: it.id}))
	case ok && it.kind == itemDraft:
		res := m.field.HandlePointer(tokens.PointerEvent{Target: tokens.TargetDraft})
		if res.Handled {
			m.apply(res)
			break
		}
		m.draft.SetCursor(m.draftCol(msg.X - it.x))
	default:
		ev := tokens.PointerEvent{
			Target:    tokens.TargetBackground,
			X:         m.layout.linear(row, msg.X),
			ChipEdges: m.layout.chipEdges(),
		}
		m.log.Debug("press", "target", "background", "x", ev.X)
		m.apply(m.field.HandlePointer(ev))
	}
	return m, cmd
}

func (m Model) pressSuggestion(i int) {
	if i < 0 || i >= len(m.layout.suggest) {
		return
	}
	m.apply(m.field.SelectSuggestion(m.layout.suggest[i].ID))
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
}
