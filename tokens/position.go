package tokens

import "strconv"

// Position is where the draft editor sits relative to the tokens.
//
// Trailing (-1) renders the draft after the last token. A position i >= 0
// renders it between token i-1 and token i; a token committed there is
// inserted at index i.
type Position int

const Trailing Position = -1

func (p Position) IsInline() bool { return p > Trailing }

// Index returns the inline index, or -1 when trailing.
func (p Position) Index() int {
	if !p.IsInline() {
		return -1
	}
	return int(p)
}

func (p Position) String() string {
	if !p.IsInline() {
		return "trailing"
	}
	return "inline@" + strconv.Itoa(int(p))
}

func (f *Field) Position() Position { return f.pos }

func (f *Field) IsInline() bool { return f.pos.IsInline() }

// MoveTo places the draft inline at i when 0 <= i < Len(), and back to the
// trailing slot otherwise. focus is echoed in the result as a request to
// focus the draft; it is false only when the move comes from focus loss.
func (f *Field) MoveTo(i int, focus bool) Result {
	f.moveTo(i)
	return Result{Handled: true, Focus: focus}
}

// MoveLeft moves the draft one slot left. From trailing it goes in front of
// the last token; in front of the first token it stays put.
func (f *Field) MoveLeft() Result {
	switch {
	case !f.pos.IsInline():
		f.moveTo(f.coll.Len() - 1)
	case f.pos > 0:
		f.moveTo(f.pos.Index() - 1)
	}
	return Result{Handled: true, Focus: true}
}

// MoveRight moves the draft one slot right; past the last token that is the
// trailing slot.
func (f *Field) MoveRight() Result {
	if f.pos.IsInline() {
		f.moveTo(f.pos.Index() + 1)
	}
	return Result{Handled: true, Focus: true}
}

func (f *Field) moveTo(i int) bool {
	var next Position
	switch n := f.coll.Len(); {
	case n > 0 && i >= 0 && i < n:
		next = Position(i)
	case f.pos.IsInline():
		next = Trailing
	default:
		return false
	}
	if next == f.pos {
		return false
	}

	if next.IsInline() {
		f.log.Debug("moving editor", "position", next.Index())
	} else {
		f.log.Debug("moving editor to trailing position")
	}
	cb := f.beginChange(ChangeMove)
	f.pos = next
	f.commitChange(cb)
	return true
}
