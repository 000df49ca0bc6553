package tokens

// Token is one immutable item of a field. ID is its identity; Label is what
// gets displayed.
type Token struct {
	ID    string
	Label string
}

// NewToken returns a token whose ID and label are both value.
func NewToken(value string) Token {
	return Token{ID: value, Label: value}
}

// NewTokens maps values through NewToken.
func NewTokens(values ...string) []Token {
	if len(values) == 0 {
		return nil
	}
	out := make([]Token, len(values))
	for i, v := range values {
		out[i] = NewToken(v)
	}
	return out
}

// String returns the label, or the ID when the label is empty.
func (t Token) String() string {
	if t.Label == "" {
		return t.ID
	}
	return t.Label
}
