package draft

import (
	"github.com/iw2rmb/tokenfield/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks are folded into spaces.
func (d *Draft) InsertText(s string) {
	if s == "" {
		if _, _, ok := d.Selection(); ok {
			d.DeleteSelection()
		}
		return
	}

	prev := d.snapshot()
	start, end := d.Caret()
	ins := grapheme.Split(grapheme.SingleLine(s))
	d.replace(start, end, ins)
	d.cursor = start + len(ins)
	d.sel = selectionState{}
	d.version++
	d.recordUndo(prev)
}

// DeleteBackward applies backspace semantics.
func (d *Draft) DeleteBackward() {
	if _, _, ok := d.Selection(); ok {
		d.DeleteSelection()
		return
	}
	if d.cursor == 0 {
		return
	}

	prev := d.snapshot()
	d.replace(d.cursor-1, d.cursor, nil)
	d.cursor--
	d.version++
	d.recordUndo(prev)
}

// DeleteForward applies delete-key semantics.
func (d *Draft) DeleteForward() {
	if _, _, ok := d.Selection(); ok {
		d.DeleteSelection()
		return
	}
	if d.cursor >= len(d.clusters) {
		return
	}

	prev := d.snapshot()
	d.replace(d.cursor, d.cursor+1, nil)
	d.version++
	d.recordUndo(prev)
}

// DeleteSelection removes the selected text, if any.
func (d *Draft) DeleteSelection() {
	start, end, ok := d.Selection()
	if !ok {
		return
	}

	prev := d.snapshot()
	d.replace(start, end, nil)
	d.cursor = start
	d.sel = selectionState{}
	d.version++
	d.recordUndo(prev)
}

// SelectedText returns the selected text, or "" without a selection.
func (d *Draft) SelectedText() string {
	start, end, ok := d.Selection()
	if !ok {
		return ""
	}
	return grapheme.Join(d.clusters[start:end])
}

func (d *Draft) replace(start, end int, ins []string) {
	out := make([]string, 0, len(d.clusters)-(end-start)+len(ins))
	out = append(out, d.clusters[:start]...)
	out = append(out, ins...)
	out = append(out, d.clusters[end:]...)
	d.clusters = out
}
