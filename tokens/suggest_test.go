package tokens

import "testing"

func recipients() []Token {
	return []Token{
		{ID: "ada@example.com", Label: "Ada Lovelace"},
		{ID: "alan@example.com", Label: "Alan Turing"},
		{ID: "grace@example.com", Label: "Grace Hopper"},
	}
}

func TestSuggestions_FilterAndExcludeExisting(t *testing.T) {
	f := New(Options{Suggestions: recipients()})

	f.FilterSuggestions("a")
	if got := len(f.SuggestionState().Items); got != 3 {
		t.Fatalf("visible for %q: got %d, want %d", "a", got, 3)
	}
	f.FilterSuggestions("AL")
	st := f.SuggestionState()
	if len(st.Items) != 1 || st.Items[0].ID != "alan@example.com" {
		t.Fatalf("visible for %q: got %+v", "AL", st.Items)
	}

	f.FilterSuggestions("")
	f.Append(recipients()[0])
	if got := len(f.SuggestionState().Items); got != 2 {
		t.Fatalf("visible after adding a token: got %d, want %d", got, 2)
	}
}

func TestSuggestions_NavigationWraps(t *testing.T) {
	f := New(Options{Suggestions: recipients()})

	res := f.HandleKey(KeyEvent{Key: KeyArrowDown})
	if !res.Handled || !res.ReplaceDraft || res.Draft != "Ada Lovelace" {
		t.Fatalf("first down: got %+v", res)
	}
	// Selection replaced the draft; the host reports it back as the query.
	f.FilterSuggestions(res.Draft)
	if got := len(f.SuggestionState().Items); got != 3 {
		t.Fatalf("applied suggestion must not re-filter: got %d items", got)
	}

	f.HandleKey(KeyEvent{Key: KeyArrowDown})
	res = f.HandleKey(KeyEvent{Key: KeyArrowDown})
	if res.Draft != "Grace Hopper" {
		t.Fatalf("third down: got %q, want %q", res.Draft, "Grace Hopper")
	}
	res = f.HandleKey(KeyEvent{Key: KeyArrowDown})
	if res.Draft != "Ada Lovelace" {
		t.Fatalf("wrap down: got %q, want %q", res.Draft, "Ada Lovelace")
	}
	res = f.HandleKey(KeyEvent{Key: KeyArrowUp})
	if res.Draft != "Grace Hopper" {
		t.Fatalf("wrap up: got %q, want %q", res.Draft, "Grace Hopper")
	}
	if got := f.SuggestionState().Selected; got != 2 {
		t.Fatalf("selected: got %d, want %d", got, 2)
	}
}

func TestSuggestions_UpWithoutSelectionPicksLast(t *testing.T) {
	f := New(Options{Suggestions: recipients()})
	res := f.HandleKey(KeyEvent{Key: KeyArrowUp})
	if res.Draft != "Grace Hopper" {
		t.Fatalf("up: got %q, want %q", res.Draft, "Grace Hopper")
	}
}

func TestSuggestions_CommitKeepsIDAndLabel(t *testing.T) {
	f := New(Options{Suggestions: recipients()})
	res := f.HandleKey(KeyEvent{Key: KeyArrowDown})
	f.HandleKey(keyOn(KeyEnter, res.Draft))

	tok, ok := f.At(0)
	if !ok || tok != recipients()[0] {
		t.Fatalf("committed token: got %+v", tok)
	}
	st := f.SuggestionState()
	if st.Selected != -1 || st.Query != "" {
		t.Fatalf("suggestions after commit: got %+v", st)
	}
}

func TestSuggestions_TypingResetsSelection(t *testing.T) {
	f := New(Options{Suggestions: recipients()})
	res := f.HandleKey(KeyEvent{Key: KeyArrowDown})
	f.FilterSuggestions(res.Draft)
	f.FilterSuggestions("Gr")
	st := f.SuggestionState()
	if st.Selected != -1 || len(st.Items) != 1 {
		t.Fatalf("after typing: got %+v", st)
	}
}

func TestSuggestions_BlurResets(t *testing.T) {
	f := New(Options{Suggestions: recipients()})
	f.FilterSuggestions("gr")
	f.HandleKey(KeyEvent{Key: KeyArrowDown})
	f.HandleBlur()
	st := f.SuggestionState()
	if st.Query != "" || st.Selected != -1 {
		t.Fatalf("after blur: got %+v", st)
	}
}

func TestSelectSuggestion(t *testing.T) {
	f := New(Options{Suggestions: recipients()})
	res := f.SelectSuggestion("grace@example.com")
	if !res.Handled || !res.ReplaceDraft || res.Draft != "Grace Hopper" {
		t.Fatalf("select: got %+v", res)
	}
	if got := f.SuggestionState().Selected; got != 2 {
		t.Fatalf("selected: got %d, want %d", got, 2)
	}
	if res := f.SelectSuggestion("nobody"); res.Handled {
		t.Fatalf("unknown id: got handled")
	}
}
