package tokens

import "github.com/iw2rmb/tokenfield/internal/grapheme"

// Key names understood by HandleKey. Any other key only matters when it
// equals the separator.
const (
	KeyEnter      = "Enter"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
)

// KeyEvent is a key press delivered while the draft has focus.
//
// CaretStart and CaretEnd are grapheme offsets into Draft; they differ when
// text is selected.
type KeyEvent struct {
	Key        string
	CaretStart int
	CaretEnd   int
	Draft      string
}

func (e KeyEvent) caretAtStart() bool {
	return e.CaretStart == 0 && e.CaretEnd == 0
}

func (e KeyEvent) caretAtEnd() bool {
	n := grapheme.Count(e.Draft)
	return e.CaretStart == n && e.CaretEnd == n
}

// PointerTarget is what a pointer press landed on.
type PointerTarget uint8

const (
	TargetBackground PointerTarget = iota
	TargetChip
	TargetDraft
)

// PointerEvent is a pointer press inside the field.
//
// For TargetChip, TokenID names the chip. For TargetBackground, X is the
// pointer coordinate and ChipEdges holds the left edge of every chip in token
// order, in the same coordinate space.
type PointerEvent struct {
	Target    PointerTarget
	TokenID   string
	X         int
	ChipEdges []int
}

// Result tells the host what to do after an event.
//
// When Handled is false the host applies its default text editing. Otherwise
// the host must suppress it and then clear the draft (ClearDraft), replace
// its text (ReplaceDraft with Draft), and focus the draft when Focus is set.
type Result struct {
	Handled      bool
	ClearDraft   bool
	ReplaceDraft bool
	Draft        string
	Focus        bool
}
