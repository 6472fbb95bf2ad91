// SPDX-License-Identifier: GPL-2.0-or-later

package maptoken

// Cursor gives a parser lookahead and backtracking over a Tokenizer.
// Comments are always skipped, line ends only while SkipEOL is set. The
// filtering happens on read so switching the mode does not invalidate
// tokens that are already buffered.
type Cursor struct {
	tz      *Tokenizer
	buf     []Token
	pos     int
	depth   int
	marks   int
	skipEOL bool
}

// Mark is a saved cursor position.
type Mark struct {
	pos   int
	depth int
}

func NewCursor(input string) *Cursor {
	return &Cursor{
		tz:      New(input),
		skipEOL: true,
	}
}

// SetSkipEOL sets the line end mode and returns the previous one.
func (c *Cursor) SetSkipEOL(skip bool) bool {
	old := c.skipEOL
	c.skipEOL = skip
	return old
}

// Depth returns the brace nesting of all tokens consumed so far.
func (c *Cursor) Depth() int {
	return c.depth
}

func (c *Cursor) skip(t Token) bool {
	return t.Kind == Comment || (t.Kind == EOL && c.skipEOL)
}

// at returns the buffered token i, reading more tokens as needed.
func (c *Cursor) at(i int) (Token, error) {
	for len(c.buf) <= i {
		if n := len(c.buf); n > 0 && c.buf[n-1].Kind == EOF {
			return c.buf[n-1], nil
		}
		t, err := c.tz.Next()
		if err != nil {
			return Token{}, err
		}
		c.buf = append(c.buf, t)
	}
	return c.buf[i], nil
}

func (c *Cursor) scan() (int, Token, error) {
	i := c.pos
	for {
		t, err := c.at(i)
		if err != nil {
			return i, Token{}, err
		}
		if t.Kind == EOF || !c.skip(t) {
			return i, t, nil
		}
		i++
	}
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, error) {
	_, t, err := c.scan()
	return t, err
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, error) {
	i, t, err := c.scan()
	if err != nil {
		return t, err
	}
	if t.Kind != EOF {
		i++
	}
	c.pos = i
	switch t.Kind {
	case OBrace:
		c.depth++
	case CBrace:
		if c.depth > 0 {
			c.depth--
		}
	}
	if c.marks == 0 && c.pos == len(c.buf) {
		c.buf = c.buf[:0]
		c.pos = 0
	}
	return t, nil
}

// Mark saves the current position. Every Mark has to be followed by
// exactly one Reset or Release.
func (c *Cursor) Mark() Mark {
	c.marks++
	return Mark{pos: c.pos, depth: c.depth}
}

// Reset returns to a saved position.
func (c *Cursor) Reset(m Mark) {
	c.pos = m.pos
	c.depth = m.depth
	c.Release(m)
}

// Release drops a saved position without moving the cursor.
func (c *Cursor) Release(Mark) {
	if c.marks > 0 {
		c.marks--
	}
}
