package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Commit, Backspace, Delete, Left, Right, SuggestNext and SuggestPrev are
// offered to the field first and only edit the draft when it declines them.
type KeyMap struct {
	Commit                   key.Binding
	Left, Right              key.Binding
	SuggestNext, SuggestPrev key.Binding
	ShiftLeft, ShiftRight    key.Binding
	WordLeft, WordRight      key.Binding
	Home, End                key.Binding

	Backspace, Delete key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add token")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		SuggestNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		SuggestPrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous suggestion")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "draft start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "draft end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Commit, km.Backspace, km.Left, km.Right, km.SuggestNext}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Commit, km.Backspace, km.Delete},
		{km.Left, km.Right, km.WordLeft, km.WordRight, km.Home, km.End},
		{km.SuggestNext, km.SuggestPrev},
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste},
	}
}
