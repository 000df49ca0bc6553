package draft

import (
	"github.com/iw2rmb/tokenfield/internal/grapheme"
)

const defaultHistoryLimit = 100

type Options struct {
	HistoryLimit int // default: 100; negative disables undo
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Draft is the uncommitted text together with its caret and selection.
type Draft struct {
	clusters []string
	version  uint64

	cursor int
	sel    selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Draft {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	d := &Draft{
		clusters: grapheme.Split(grapheme.SingleLine(text)),
		opt:      opt,
	}
	d.cursor = len(d.clusters)
	return d
}

func (d *Draft) Text() string { return grapheme.Join(d.clusters) }

// Len returns the number of grapheme clusters.
func (d *Draft) Len() int { return len(d.clusters) }

func (d *Draft) IsEmpty() bool { return len(d.clusters) == 0 }

func (d *Draft) Version() uint64 { return d.version }

func (d *Draft) Cursor() int { return d.cursor }

// Clusters returns a copy of the grapheme clusters.
func (d *Draft) Clusters() []string {
	return append([]string(nil), d.clusters...)
}

// Caret returns the selection bounds, or (cursor, cursor) without a
// selection. This is what key events report as caret start and end.
func (d *Draft) Caret() (start, end int) {
	if s, e, ok := d.Selection(); ok {
		return s, e
	}
	return d.cursor, d.cursor
}

// AtStart reports a collapsed caret at offset 0.
func (d *Draft) AtStart() bool {
	s, e := d.Caret()
	return s == 0 && e == 0
}

// AtEnd reports a collapsed caret after the last cluster.
func (d *Draft) AtEnd() bool {
	s, e := d.Caret()
	return s == len(d.clusters) && e == s
}

func (d *Draft) SetCursor(col int) {
	next := d.clamp(col)
	if next == d.cursor && !d.sel.active {
		return
	}
	d.cursor = next
	d.sel = selectionState{}
	d.version++
}

// Selection returns the normalized selection. Empty selections are inactive.
func (d *Draft) Selection() (start, end int, ok bool) {
	if !d.sel.active || d.sel.anchor == d.sel.end {
		return 0, 0, false
	}
	start, end = d.sel.anchor, d.sel.end
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// SetSelection selects [anchor, end) and moves the cursor to end.
func (d *Draft) SetSelection(anchor, end int) {
	anchor, end = d.clamp(anchor), d.clamp(end)
	next := selectionState{active: anchor != end, anchor: anchor, end: end}
	if next == d.sel && d.cursor == end {
		return
	}
	d.sel = next
	d.cursor = end
	d.version++
}

func (d *Draft) ClearSelection() {
	if !d.sel.active {
		return
	}
	d.sel = selectionState{}
	d.version++
}

// SetText replaces the whole text and puts the cursor at its end. It is
// recorded in the undo history.
func (d *Draft) SetText(text string) {
	next := grapheme.Split(grapheme.SingleLine(text))
	if grapheme.Join(next) == d.Text() && d.cursor == len(next) && !d.sel.active {
		return
	}
	prev := d.snapshot()
	d.clusters = next
	d.cursor = len(next)
	d.sel = selectionState{}
	d.version++
	d.recordUndo(prev)
}

// Clear empties the draft. Clearing also drops the undo history: the text
// was either committed or abandoned.
func (d *Draft) Clear() {
	d.hist = historyState{}
	if len(d.clusters) == 0 && d.cursor == 0 && !d.sel.active {
		return
	}
	d.clusters = nil
	d.cursor = 0
	d.sel = selectionState{}
	d.version++
}

func (d *Draft) clamp(col int) int {
	if col < 0 {
		return 0
	}
	if col > len(d.clusters) {
		return len(d.clusters)
	}
	return col
}
