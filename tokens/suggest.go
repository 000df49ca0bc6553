package tokens

import "strings"

// suggestions is the optional list of predefined items offered while the
// user types. Choosing one only overwrites the draft; it becomes a token
// through the normal commit.
type suggestions struct {
	items []Token
	query string

	selectedID  string
	hasSelected bool

	// applied is the label last written into the draft by a selection, so
	// the resulting draft change does not re-filter the list.
	applied string
}

// SuggestionState is a snapshot of the suggestion list for rendering.
type SuggestionState struct {
	Query string
	// Items are the visible items: label contains Query (case-insensitive)
	// and not already a token.
	Items []Token
	// Selected indexes Items, or -1.
	Selected int
}

// SetSuggestions replaces the suggestion items and drops the selection.
func (f *Field) SetSuggestions(items []Token) {
	f.suggest.items = append([]Token(nil), items...)
	f.suggest.hasSelected = false
	f.suggest.selectedID = ""
}

// FilterSuggestions narrows the list to items matching the draft text.
// Hosts call it whenever the draft text changes.
func (f *Field) FilterSuggestions(query string) {
	s := &f.suggest
	if s.applied != "" && query == s.applied {
		return
	}
	s.applied = ""
	if query == s.query {
		return
	}
	s.query = query
	s.hasSelected = false
	s.selectedID = ""
}

func (f *Field) SuggestionState() SuggestionState {
	visible := f.visibleSuggestions()
	st := SuggestionState{Query: f.suggest.query, Items: visible, Selected: -1}
	if f.suggest.hasSelected {
		for i, t := range visible {
			if t.ID == f.suggest.selectedID {
				st.Selected = i
				break
			}
		}
	}
	return st
}

func (f *Field) visibleSuggestions() []Token {
	s := &f.suggest
	if len(s.items) == 0 {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(s.query))
	out := make([]Token, 0, len(s.items))
	for _, t := range s.items {
		if f.coll.Contains(t.ID) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.String()), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// stepSuggestion moves the selection by delta with wrap-around. Without a
// selection, a forward step selects the first item and a backward step the
// last one.
func (f *Field) stepSuggestion(delta int) (Token, bool) {
	visible := f.visibleSuggestions()
	if len(visible) == 0 {
		return Token{}, false
	}
	st := f.SuggestionState()
	next := 0
	switch {
	case st.Selected < 0 && delta < 0:
		next = len(visible) - 1
	case st.Selected < 0:
		next = 0
	default:
		next = (st.Selected + delta + len(visible)) % len(visible)
	}
	t := visible[next]
	f.suggest.selectedID = t.ID
	f.suggest.hasSelected = true
	return t, true
}

// matchSuggestion finds the item whose label or ID is exactly text, so a
// committed suggestion keeps its ID and label.
func (f *Field) matchSuggestion(text string) (Token, bool) {
	for _, t := range f.suggest.items {
		if t.String() == text || t.ID == text {
			return t, true
		}
	}
	return Token{}, false
}

func (f *Field) resetSuggestions() {
	f.suggest.query = ""
	f.suggest.applied = ""
	f.suggest.hasSelected = false
	f.suggest.selectedID = ""
}

// SelectSuggestion selects the visible item with id, as a pointer press on
// the list does, and asks the host to put its label into the draft.
func (f *Field) SelectSuggestion(id string) Result {
	for _, t := range f.visibleSuggestions() {
		if t.ID == id {
			f.suggest.selectedID = t.ID
			f.suggest.hasSelected = true
			return f.applySuggestion(t, true)
		}
	}
	return Result{}
}
