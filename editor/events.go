package editor

import (
	"github.com/iw2rmb/tokenfield/draft"
	"github.com/iw2rmb/tokenfield/measure"
	"github.com/iw2rmb/tokenfield/tokens"
)

// ChangeEvent is the state reported to Config.OnChange.
type ChangeEvent struct {
	Version      uint64 // field version
	DraftVersion uint64

	Tokens   []tokens.Token
	Position tokens.Position

	Draft      string
	DraftWidth int
	// Flexible is true while the draft is trailing and takes the rest of the
	// row instead of DraftWidth.
	Flexible bool

	// Change is the last field mutation, when the field version moved.
	Change    tokens.Change
	HasChange bool
}

func buildChangeEvent(f *tokens.Field, d *draft.Draft, m measure.Measurer, fieldChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:      f.Version(),
		DraftVersion: d.Version(),
		Tokens:       f.Tokens(),
		Position:     f.Position(),
		Draft:        d.Text(),
	}
	ev.DraftWidth, ev.Flexible = f.DraftWidth(ev.Draft, m)
	if fieldChanged {
		ev.Change, ev.HasChange = f.LastChange()
	}
	return ev
}
