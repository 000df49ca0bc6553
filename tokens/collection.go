package tokens

// Collection is an ordered sequence of tokens with unique IDs.
//
// The zero value is an empty collection.
type Collection struct {
	items []Token
}

// NewCollection returns a collection seeded with ts. Later duplicates are
// dropped.
func NewCollection(ts ...Token) *Collection {
	c := &Collection{}
	for _, t := range ts {
		c.Append(t)
	}
	return c
}

func (c *Collection) Len() int { return len(c.items) }

func (c *Collection) At(i int) (Token, bool) {
	if i < 0 || i >= len(c.items) {
		return Token{}, false
	}
	return c.items[i], true
}

// Tokens returns a copy of the tokens in order.
func (c *Collection) Tokens() []Token {
	if len(c.items) == 0 {
		return nil
	}
	return append([]Token(nil), c.items...)
}

// IDs returns the token IDs in order.
func (c *Collection) IDs() []string {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]string, len(c.items))
	for i, t := range c.items {
		out[i] = t.ID
	}
	return out
}

func (c *Collection) Contains(id string) bool { return c.IndexOf(id) > -1 }

// IndexOf returns the index of the token with id, or -1.
func (c *Collection) IndexOf(id string) int {
	for i, t := range c.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Append adds t after the last token unless its ID is already present.
func (c *Collection) Append(t Token) bool {
	return c.InsertAt(t, len(c.items))
}

// InsertAt inserts t at i, shifting later tokens right. It is a no-op when
// t's ID is present or i is outside [0, Len()].
func (c *Collection) InsertAt(t Token, i int) bool {
	if c.Contains(t.ID) || i < 0 || i > len(c.items) {
		return false
	}
	c.items = append(c.items, Token{})
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = t
	return true
}

// RemoveAt removes and returns the token at i. It is a no-op when i is
// outside [0, Len()).
func (c *Collection) RemoveAt(i int) (Token, bool) {
	if i < 0 || i >= len(c.items) {
		return Token{}, false
	}
	t := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return t, true
}

// RemoveValue removes the token with id.
func (c *Collection) RemoveValue(id string) (Token, bool) {
	return c.RemoveAt(c.IndexOf(id))
}

func (c *Collection) clear() {
	c.items = nil
}
