// Package cursor tracks the highlighted entry of a scrollable list or grid.
package cursor

// Cursor manages cursor position and scroll offset. The list length and
// viewport height are passed to methods rather than stored, since catalog
// refetches can change them at any time.
type Cursor struct {
	pos    int // highlighted index
	offset int // first visible index
	margin int // rows kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the highlighted index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta within a list of listLen entries.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump highlights pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart highlights the first entry.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd highlights the last entry.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// MoveGrid moves within a grid laid out row by row with cols columns.
// Horizontal moves stop at row edges; vertical moves keep the column and
// stop at the last entry.
func (c *Cursor) MoveGrid(dx, dy, cols, listLen int) {
	if listLen == 0 || cols <= 0 {
		return
	}
	col := c.pos % cols
	if nc := col + dx; nc >= 0 && nc < cols {
		c.pos = clamp(c.pos+dx, listLen-1)
	}
	if dy != 0 {
		if next := c.pos + dy*cols; next >= 0 && next < listLen {
			c.pos = next
		}
	}
}

// ClampToBounds keeps the cursor inside a list that may have shrunk.
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.offset = clamp(c.offset, c.pos)
	return c.pos != old
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies list navigation keys and reports whether key was one.
// Supported keys: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
