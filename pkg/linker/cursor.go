package linker

// tokenCursor walks an already-complete token sequence. Tokens are never
// mutated; only the cursor position moves, which is what lets the parser
// try an alternative production and back out with save/restore.
type tokenCursor struct {
	toks []Token
	pos  int
}

func newTokenCursor(toks []Token) *tokenCursor {
	return &tokenCursor{toks: toks}
}

func (c *tokenCursor) next() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	tok := c.toks[c.pos]
	c.pos++
	return tok, true
}

func (c *tokenCursor) peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

func (c *tokenCursor) save() int {
	return c.pos
}

func (c *tokenCursor) restore(mark int) {
	c.pos = mark
}

func (c *tokenCursor) rewindBy(n int) {
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}
