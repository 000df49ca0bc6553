package draft

import "github.com/iw2rmb/tokenfield/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (d *Draft) Move(m Move) {
	prevCursor := d.cursor
	prevSel := d.sel

	next := d.clamp(d.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	} else if start, end, ok := d.Selection(); ok && m.Unit == MoveGrapheme {
		// Collapsing a selection lands on its edge instead of stepping past it.
		switch m.Dir {
		case DirLeft:
			next = start
		case DirRight:
			next = end
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}

	d.cursor = next
	d.sel = nextSel
	d.version++
}

func (d *Draft) moveCursor(col int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			return col - 1
		case DirRight:
			return col + 1
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return prevWordBoundary(d.clusters, col)
		case DirRight:
			return nextWordBoundary(d.clusters, col)
		}
	}
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(d.clusters)
	}
	return col
}

// Word boundary rules: skip whitespace, then skip non-whitespace.
func prevWordBoundary(line []string, col int) int {
	i := col
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := col
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
