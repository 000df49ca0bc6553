package tokens

import (
	"strings"

	"github.com/iw2rmb/tokenfield/measure"
)

// HandleKey applies the key protocol. Rules are checked in order and the
// first match handles the event:
//
//   - Enter or the separator commits the trimmed draft (a blank draft is
//     swallowed without a token).
//   - Backspace with an empty draft removes the token left of the editor.
//   - Delete with an empty inline draft removes the token right of it.
//   - ArrowRight/ArrowLeft with an empty draft move the editor.
//   - ArrowDown/ArrowUp step through visible suggestions.
func (f *Field) HandleKey(ev KeyEvent) Result {
	empty := ev.Draft == ""

	switch {
	case ev.Key == KeyEnter || ev.Key == f.sep:
		return f.commit(ev.Draft)

	case ev.Key == KeyBackspace && ev.caretAtStart() && empty:
		if f.pos.IsInline() {
			// Move before removing: the position stays inside [0, Len()).
			i := f.pos.Index()
			f.moveTo(i - 1)
			f.RemoveAt(i - 1)
		} else {
			f.RemoveAt(f.coll.Len() - 1)
		}
		return Result{Handled: true, Focus: true}

	case ev.Key == KeyDelete && ev.caretAtEnd() && empty && f.pos.IsInline():
		i := f.pos.Index()
		f.RemoveAt(i)
		f.moveTo(i)
		return Result{Handled: true, Focus: true}

	case ev.Key == KeyArrowRight && ev.caretAtEnd() && empty:
		return f.MoveRight()

	case ev.Key == KeyArrowLeft && ev.caretAtStart() && empty:
		return f.MoveLeft()

	case ev.Key == KeyArrowDown && len(f.visibleSuggestions()) > 0:
		return f.applySuggestion(f.stepSuggestion(1))

	case ev.Key == KeyArrowUp && len(f.visibleSuggestions()) > 0:
		return f.applySuggestion(f.stepSuggestion(-1))
	}

	return Result{}
}

// HandlePointer applies a pointer press. Presses on the draft itself are
// left to the host's caret placement.
func (f *Field) HandlePointer(ev PointerEvent) Result {
	switch ev.Target {
	case TargetChip:
		return f.MoveTo(f.coll.IndexOf(ev.TokenID), true)
	case TargetBackground:
		return f.MoveTo(TokenLeftOf(ev.X, ev.ChipEdges)+1, true)
	default:
		return Result{}
	}
}

// HandleBlur clears the draft and returns the editor to the trailing slot
// without asking for focus again.
func (f *Field) HandleBlur() Result {
	f.log.Debug("clearing editor")
	f.resetSuggestions()
	res := f.MoveTo(-1, false)
	res.ClearDraft = true
	return res
}

// TokenLeftOf returns the index of the rightmost chip whose left edge is at
// or before x, scanning edges in order and stopping at the first edge past x.
// It returns -1 when x is left of every chip.
func TokenLeftOf(x int, edges []int) int {
	pos := -1
	for i, e := range edges {
		if e > x {
			break
		}
		pos = i
	}
	return pos
}

// DraftWidth returns the width the draft box needs. Inline, it is the
// measured text plus DraftPadding, or 0 for empty text. Trailing, the draft
// takes whatever is left of the row and flexible is true.
func (f *Field) DraftWidth(draft string, m measure.Measurer) (width int, flexible bool) {
	if !f.pos.IsInline() {
		return 0, true
	}
	if m == nil || draft == "" {
		return 0, false
	}
	w := m.Measure(draft)
	if w <= 0 {
		return 0, false
	}
	return w + f.padding, false
}

func (f *Field) commit(draft string) Result {
	text := strings.TrimSpace(draft)
	if text == "" {
		return Result{Handled: true}
	}

	t, ok := f.matchSuggestion(text)
	if !ok {
		t, ok = f.resolve(text)
	}
	if !ok {
		f.log.Debug("commit rejected", "text", text)
	}

	res := Result{Handled: true, ClearDraft: true}
	if f.pos.IsInline() {
		i := f.pos.Index()
		if ok {
			f.InsertAt(t, i)
		}
		f.moveTo(i + 1)
		res.Focus = true
	} else if ok {
		f.Append(t)
	}
	f.resetSuggestions()
	return res
}

func (f *Field) applySuggestion(t Token, ok bool) Result {
	if !ok {
		return Result{Handled: true}
	}
	f.log.Debug("selected suggestion", "token", t.ID)
	f.suggest.applied = t.String()
	return Result{Handled: true, ReplaceDraft: true, Draft: t.String()}
}
