package tokens

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

const DefaultSeparator = " "

// Options configures a Field. The zero value is usable.
type Options struct {
	// Separator commits the draft like Enter. It is a key name as reported by
	// the host (for example "," or "tab"). Default: " ".
	Separator string

	// Tokens seeds the collection. Duplicate IDs are dropped.
	Tokens []Token

	// Suggestions is the optional list of items offered while typing.
	Suggestions []Token

	// Resolve turns committed text into a token. Returning false rejects the
	// commit. Default: NewToken.
	Resolve func(text string) (Token, bool)

	// DraftPadding is added to a non-zero inline draft measurement so the
	// caret has room after the last glyph.
	DraftPadding int

	// Logger receives debug records at every transition. Default: discard.
	Logger *slog.Logger

	// OnChange is called after every effective mutation.
	OnChange func(Change)
}

// Field owns a token collection and the draft editor position, and applies
// the interaction protocol to them.
type Field struct {
	coll Collection
	pos  Position

	sep      string
	resolve  func(string) (Token, bool)
	padding  int
	log      *slog.Logger
	onChange func(Change)

	suggest suggestions

	version       uint64
	lastChange    Change
	hasLastChange bool
}

func New(opt Options) *Field {
	f := &Field{
		pos:      Trailing,
		sep:      opt.Separator,
		resolve:  opt.Resolve,
		padding:  opt.DraftPadding,
		log:      opt.Logger,
		onChange: opt.OnChange,
	}
	if f.sep == "" {
		f.sep = DefaultSeparator
	}
	if f.resolve == nil {
		f.resolve = resolveText
	}
	if f.padding < 0 {
		f.padding = 0
	}
	if f.log == nil {
		f.log = slog.New(slog.DiscardHandler)
	}
	f.log = f.log.With("component", "tokens")
	for _, t := range opt.Tokens {
		f.coll.Append(t)
	}
	f.SetSuggestions(opt.Suggestions)
	return f
}

func resolveText(text string) (Token, bool) { return NewToken(text), true }

func (f *Field) Separator() string { return f.sep }

func (f *Field) Len() int { return f.coll.Len() }

func (f *Field) At(i int) (Token, bool) { return f.coll.At(i) }

func (f *Field) Tokens() []Token { return f.coll.Tokens() }

func (f *Field) IDs() []string { return f.coll.IDs() }

func (f *Field) Contains(id string) bool { return f.coll.Contains(id) }

func (f *Field) IndexOf(id string) int { return f.coll.IndexOf(id) }

// Append adds t after the last token unless its ID is present.
func (f *Field) Append(t Token) bool {
	return f.InsertAt(t, f.coll.Len())
}

// InsertAt inserts t at i. Duplicate IDs and i outside [0, Len()] are no-ops.
func (f *Field) InsertAt(t Token, i int) bool {
	cb := f.beginChange(ChangeInsert)
	if !f.coll.InsertAt(t, i) {
		return false
	}
	f.log.Debug("adding token", "token", t.ID, "index", i)
	cb.token, cb.index = t, i
	f.commitChange(cb)
	return true
}

// RemoveAt removes the token at i. An inline position left at or past the
// end goes back to trailing within the same change.
func (f *Field) RemoveAt(i int) (Token, bool) {
	cb := f.beginChange(ChangeRemove)
	t, ok := f.coll.RemoveAt(i)
	if !ok {
		return Token{}, false
	}
	f.log.Debug("removed token", "token", t.ID, "index", i)
	if f.pos.IsInline() && f.pos.Index() >= f.coll.Len() {
		f.log.Debug("moving editor to trailing position")
		f.pos = Trailing
	}
	cb.token, cb.index = t, i
	f.commitChange(cb)
	return t, true
}

func (f *Field) RemoveValue(id string) (Token, bool) {
	return f.RemoveAt(f.coll.IndexOf(id))
}

// Toggle removes t when present and appends it otherwise.
func (f *Field) Toggle(t Token) bool {
	if f.coll.Contains(t.ID) {
		_, ok := f.RemoveValue(t.ID)
		return ok
	}
	return f.Append(t)
}

// SetValue replaces all tokens with the parts of value split on the
// separator. Empty parts and duplicates are skipped and the draft returns to
// the trailing position.
func (f *Field) SetValue(value string) {
	var parts []string
	if sep := f.valueSeparator(); sep == " " {
		parts = strings.Fields(value)
	} else {
		parts = strings.Split(value, sep)
	}

	var next Collection
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if t, ok := f.resolve(p); ok {
			next.Append(t)
		}
	}
	if equalTokens(next.items, f.coll.items) && !f.pos.IsInline() {
		return
	}

	f.log.Debug("replacing tokens", "count", next.Len())
	cb := f.beginChange(ChangeReset)
	f.coll = next
	f.pos = Trailing
	f.commitChange(cb)
}

// Value joins the token IDs with the separator.
func (f *Field) Value() string {
	return strings.Join(f.coll.IDs(), f.valueSeparator())
}

// Clear removes every token.
func (f *Field) Clear() {
	if f.coll.Len() == 0 && !f.pos.IsInline() {
		return
	}
	f.log.Debug("clearing tokens")
	cb := f.beginChange(ChangeReset)
	f.coll.clear()
	f.pos = Trailing
	f.commitChange(cb)
}

// valueSeparator is the separator as text. Key names such as "tab" do not
// appear inside values, so they fall back to a space.
func (f *Field) valueSeparator() string {
	if utf8.RuneCountInString(f.sep) == 1 {
		return f.sep
	}
	return DefaultSeparator
}

func equalTokens(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
