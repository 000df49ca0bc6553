package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tokenfield/measure"
	"github.com/iw2rmb/tokenfield/tokens"
)

type itemKind uint8

const (
	itemChip itemKind = iota
	itemDraft
)

// layoutItem is a chip or the draft box placed at (row, x) with w cells.
type layoutItem struct {
	kind itemKind
	id   string // token ID for chips
	row  int
	x, w int
	view string
}

type layout struct {
	width int
	rows  int
	items []layoutItem

	content string

	suggest         []tokens.Token // rendered suggestion rows
	suggestSelected int            // row index, -1 when none
}

func (l layout) draftRow() int {
	for _, it := range l.items {
		if it.kind == itemDraft {
			return it.row
		}
	}
	return 0
}

// linear maps a layout cell to a single increasing coordinate, row-major.
// x is clamped to the row so no cell maps into the next row's range.
func (l layout) linear(row, x int) int {
	if l.width > 0 && x >= l.width {
		x = l.width - 1
	}
	return row*l.width + x
}

// chipEdges returns the linear left edge of every chip in token order.
func (l layout) chipEdges() []int {
	edges := make([]int, 0, len(l.items))
	for _, it := range l.items {
		if it.kind == itemChip {
			edges = append(edges, l.linear(it.row, it.x))
		}
	}
	return edges
}

// hit returns the item covering the cell, if any.
func (l layout) hit(row, x int) (layoutItem, bool) {
	for _, it := range l.items {
		if it.row == row && x >= it.x && x < it.x+it.w {
			return it, true
		}
	}
	return layoutItem{}, false
}

func (m *Model) buildLayout() layout {
	st := m.cfg.Style
	l := layout{width: m.width, suggestSelected: -1}
	pos := m.field.Position()

	row, x := 0, 0
	place := func(w int) (int, int) {
		if m.width > 0 && x > 0 && x+w > m.width {
			row++
			x = 0
		}
		r, c := row, x
		x += w + chipGap
		return r, c
	}

	for i, t := range m.field.Tokens() {
		if pos.IsInline() && pos.Index() == i {
			w, _ := m.DraftWidth()
			if w < caretPadding {
				w = caretPadding
			}
			r, c := place(w)
			l.items = append(l.items, layoutItem{kind: itemDraft, row: r, x: c, w: w, view: m.renderDraft(w)})
		}

		chipStyle := st.Chip
		if pos.IsInline() && pos.Index() == i {
			chipStyle = st.ChipActive
		}
		if m.width > 0 {
			chipStyle = chipStyle.MaxWidth(m.width)
		}
		view := chipStyle.Render(t.String())
		w := lipgloss.Width(view)
		r, c := place(w)
		l.items = append(l.items, layoutItem{kind: itemChip, id: t.ID, row: r, x: c, w: w, view: view})
	}

	if !pos.IsInline() {
		w := max(m.cfg.MinDraftWidth, m.cfg.Measurer.Measure(m.draft.Text())+caretPadding)
		r, c := place(w)
		if m.width > 0 && (m.width-c > w || c == 0) {
			w = m.width - c
		}
		l.items = append(l.items, layoutItem{kind: itemDraft, row: r, x: c, w: w, view: m.renderDraft(w)})
	}

	l.rows = row + 1
	l.content = renderRows(l.items, l.rows)
	m.layoutSuggestions(&l)
	return l
}

func renderRows(items []layoutItem, rows int) string {
	lines := make([]strings.Builder, rows)
	cols := make([]int, rows)
	for _, it := range items {
		sb := &lines[it.row]
		if pad := it.x - cols[it.row]; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(it.view)
		cols[it.row] = it.x + it.w
	}
	out := make([]string, rows)
	for i := range lines {
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}

// draftCol maps a cell offset inside the draft box to a grapheme offset.
func (m Model) draftCol(dx int) int {
	acc := 0
	for i, c := range m.draft.Clusters() {
		w := measure.ClusterWidth(c)
		if dx < acc+w {
			return i
		}
		acc += w
	}
	return m.draft.Len()
}
