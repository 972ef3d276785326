package scanner

// Cursor is a position tracked view over the source runes. The needle only
// moves forward; Peek, PeekBehind and Substring never consume.
type Cursor struct {
	src    []rune
	needle int
}

func NewCursor(src string) *Cursor {
	return &Cursor{src: []rune(src)}
}

// Next consumes and returns the rune at the needle. Returns false at end of
// input.
func (c *Cursor) Next() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}

	r := c.src[c.needle]
	c.needle++
	return r, true
}

// Peek returns the rune n positions ahead of the needle. Peek(0) is the rune
// Next would return.
func (c *Cursor) Peek(n int) (rune, bool) {
	i := c.needle + n
	if n < 0 || i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

// PeekBehind returns the rune n positions behind the needle. PeekBehind(1) is
// the last consumed rune.
func (c *Cursor) PeekBehind(n int) (rune, bool) {
	i := c.needle - n
	if n < 0 || i < 0 || i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

// Substring returns the runes in [start, end). Returns false if start > end
// or either bound exceeds the length of the source.
func (c *Cursor) Substring(start, end int) (string, bool) {
	if start < 0 || start > end || end > len(c.src) {
		return "", false
	}
	return string(c.src[start:end]), true
}

// Offset is the index of the needle, equal to the number of consumed runes.
func (c *Cursor) Offset() int {
	return c.needle
}

func (c *Cursor) Len() int {
	return len(c.src)
}

func (c *Cursor) AtEnd() bool {
	return c.needle >= len(c.src)
}

// match reports whether Peek(0) is r.
func (c *Cursor) match(r rune) bool {
	p, ok := c.Peek(0)
	return ok && p == r
}
