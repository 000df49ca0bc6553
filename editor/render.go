package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tokenfield/internal/grapheme"
	"github.com/iw2rmb/tokenfield/measure"
)

// renderDraft renders the draft text with caret and selection, padded to w
// cells. Text wider than w is not truncated.
func (m *Model) renderDraft(w int) string {
	st := m.cfg.Style
	clusters := m.draft.Clusters()
	cursor := m.draft.Cursor()
	selStart, selEnd, selOK := m.draft.Selection()

	var sb strings.Builder
	used := 0
	for i, c := range clusters {
		s := st.Text
		switch {
		case m.focused && i == cursor && !selOK:
			s = st.Cursor
		case selOK && i >= selStart && i < selEnd:
			s = st.Selection
		}
		sb.WriteString(s.Render(c))
		used += measure.ClusterWidth(c)
	}

	if m.focused && cursor == len(clusters) && !selOK {
		sb.WriteString(st.Cursor.Render(" "))
		used++
	}

	if ph := m.placeholder(); ph != "" && w-used > 0 {
		ph = truncateCells(ph, w-used)
		sb.WriteString(st.Placeholder.Render(ph))
		used += measure.Cells{}.Measure(ph)
	}

	if used < w {
		sb.WriteString(strings.Repeat(" ", w-used))
	}
	return sb.String()
}

func (m *Model) placeholder() string {
	if m.cfg.Placeholder == "" || m.field.Len() > 0 || !m.draft.IsEmpty() || m.field.IsInline() {
		return ""
	}
	return m.cfg.Placeholder
}

func truncateCells(s string, w int) string {
	var sb strings.Builder
	used := 0
	for _, c := range grapheme.Split(s) {
		cw := measure.ClusterWidth(c)
		if used+cw > w {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	return sb.String()
}

// layoutSuggestions picks the suggestion rows to show, keeping the selected
// item inside a window of MaxSuggestions rows.
func (m *Model) layoutSuggestions(l *layout) {
	if !m.focused {
		return
	}
	state := m.field.SuggestionState()
	if len(state.Items) == 0 || (state.Query == "" && state.Selected < 0) {
		return
	}

	start := 0
	if state.Selected >= m.cfg.MaxSuggestions {
		start = state.Selected - m.cfg.MaxSuggestions + 1
	}
	end := min(start+m.cfg.MaxSuggestions, len(state.Items))
	l.suggest = state.Items[start:end]
	if state.Selected >= 0 {
		l.suggestSelected = state.Selected - start
	}
}

func (m Model) renderSuggestions() string {
	if len(m.layout.suggest) == 0 {
		return ""
	}
	st := m.cfg.Style
	lines := make([]string, len(m.layout.suggest))
	for i, t := range m.layout.suggest {
		s := st.Suggestion
		if i == m.layout.suggestSelected {
			s = st.SuggestionSelected
		}
		lines[i] = s.Render(t.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// fieldRows is the number of rows the field occupies in View.
func (m Model) fieldRows() int {
	if m.height > 0 {
		return m.height
	}
	return m.layout.rows
}
