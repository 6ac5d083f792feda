package buffer

import "github.com/fivemoreminix/glslmode/pkg/glsl"

// The cursor lives next to the buffer because it has to know where lines
// end to move at all. The buffer is the city, and the Cursor is the car.

// A Cursor is a rune position in a Buffer. Its methods return the moved
// Cursor and never modify the receiver.
type Cursor struct {
	buffer  Buffer
	line    int
	col     int
	wantCol int // Column to return to when moving through shorter lines
}

func NewCursor(in Buffer) Cursor {
	return Cursor{buffer: in}
}

func (c Cursor) Left() Cursor {
	if c.col == 0 && c.line != 0 { // Wrap to the end of the line above
		c.line--
		c.col = c.buffer.RunesInLine(c.line)
	} else if c.col > 0 {
		c.col--
	}
	c.wantCol = c.col
	return c
}

func (c Cursor) Right() Cursor {
	if c.col >= c.buffer.RunesInLine(c.line) && c.line < c.buffer.Lines()-1 {
		c.line, c.col = c.line+1, 0
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line, c.col+1)
	}
	c.wantCol = c.col
	return c
}

func (c Cursor) Up() Cursor {
	if c.line == 0 {
		c.col, c.wantCol = 0, 0
		return c
	}
	c.line, c.col = c.buffer.ClampLineCol(c.line-1, c.wantCol)
	return c
}

func (c Cursor) Down() Cursor {
	if c.line == c.buffer.Lines()-1 {
		c.col = c.buffer.RunesInLine(c.line)
		c.wantCol = c.col
		return c
	}
	c.line, c.col = c.buffer.ClampLineCol(c.line+1, c.wantCol)
	return c
}

// Home moves to the first column of the line.
func (c Cursor) Home() Cursor {
	c.col, c.wantCol = 0, 0
	return c
}

// End moves past the last rune of the line.
func (c Cursor) End() Cursor {
	c.col = c.buffer.RunesInLine(c.line)
	c.wantCol = c.col
	return c
}

func (c Cursor) GetLineCol() (line, col int) {
	return c.line, c.col
}

// SetLineCol moves the Cursor to line, col after clamping both to the buffer.
func (c Cursor) SetLineCol(line, col int) Cursor {
	c.line, c.col = c.buffer.ClampLineCol(line, col)
	c.wantCol = c.col
	return c
}

// Pos returns the byte offset of the Cursor.
func (c Cursor) Pos() int {
	return c.buffer.LineColToPos(c.line, c.col)
}

// Word returns the identifier under or just before the Cursor, and its byte
// bounds within the buffer. ok is false when the Cursor is not on a word.
func (c Cursor) Word() (word string, start, end int, ok bool) {
	lineStart := c.buffer.LineColToPos(c.line, 0)
	data := trimEOL(c.buffer.Line(c.line))
	at := c.Pos() - lineStart

	start, end = at, at
	for start > 0 && isWordByte(data[start-1]) {
		start--
	}
	for end < len(data) && isWordByte(data[end]) {
		end++
	}
	word = string(data[start:end])
	if !glsl.IsIdentifier(word) {
		return "", 0, 0, false
	}
	return word, lineStart + start, lineStart + end, true
}

func isWordByte(b byte) bool {
	return b == '_' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func (c Cursor) Eq(other Cursor) bool {
	return c.buffer == other.buffer && c.line == other.line && c.col == other.col
}
