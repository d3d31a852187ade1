package suggest

// NoSelection marks a cursor with nothing selected.
const NoSelection = -1

// Cursor is the keyboard selection over a suggestion list. Arrow keys cycle
// with wraparound; any input change resets the selection. The zero value has
// no selection.
type Cursor struct {
	pos int
	set bool
}

// Selection returns the selected index, or NoSelection.
func (c *Cursor) Selection() int {
	if !c.set {
		return NoSelection
	}
	return c.pos
}

// Selected reports whether an item is selected and returns its index.
func (c *Cursor) Selected() (int, bool) {
	if !c.set {
		return NoSelection, false
	}
	return c.pos, true
}

// Down moves to the next suggestion, wrapping from the last to the first.
// With no prior selection it lands on the first. A no-op when n == 0.
func (c *Cursor) Down(n int) {
	if n <= 0 {
		c.Reset()
		return
	}
	if !c.set {
		c.pos, c.set = 0, true
		return
	}
	c.pos = (c.pos + 1) % n
}

// Up moves to the previous suggestion, wrapping from the first to the last.
// With no prior selection it lands on the last. A no-op when n == 0.
func (c *Cursor) Up(n int) {
	if n <= 0 {
		c.Reset()
		return
	}
	if !c.set {
		c.pos, c.set = n-1, true
		return
	}
	c.pos = (c.pos - 1 + n) % n
}

// Reset clears the selection.
func (c *Cursor) Reset() {
	c.pos, c.set = 0, false
}
