package buffer

import (
	"io"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

var newline = []byte{'\n'}

// RopeBuffer implements Buffer on top of a rope, so that edits in large
// shader sources do not copy the whole file.
type RopeBuffer rope.Node

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return (*RopeBuffer)(rope.New(contents))
}

func (b *RopeBuffer) node() *rope.Node {
	return (*rope.Node)(b)
}

// lineBounds returns the offset of the first byte of line and the offset
// just past its delimiter. For the last, empty line of a buffer ending in a
// newline, both are Len().
func (b *RopeBuffer) lineBounds(line int) (start, end int) {
	if line < 0 {
		panic("lineBounds: negative line")
	}
	n := b.node()
	end = n.Len()
	found := line == 0
	n.IndexAllFunc(0, n.Len(), newline, func(idx int) bool {
		if !found {
			line--
			if line == 0 {
				start, found = idx+1, true
			}
			return false // Keep going to find where this line ends
		}
		end = idx + 1
		return true
	})
	if !found {
		panic("lineBounds: not enough lines in buffer to reach line")
	}
	return start, end
}

func (b *RopeBuffer) Line(line int) []byte {
	return b.node().Slice(b.lineBounds(line))
}

func (b *RopeBuffer) Slice(start, end int) []byte {
	return b.node().Slice(start, end)
}

func (b *RopeBuffer) Bytes() []byte {
	return b.node().Value()
}

func (b *RopeBuffer) Insert(line, col int, value []byte) {
	b.node().Insert(b.LineColToPos(line, col), value)
}

func (b *RopeBuffer) Remove(startLine, startCol, endLine, endCol int) {
	start := b.LineColToPos(startLine, startCol)
	end := b.LineColToPos(endLine, endCol)
	if start < end {
		b.node().Remove(start, end)
	}
}

func (b *RopeBuffer) Len() int {
	return b.node().Len()
}

func (b *RopeBuffer) Lines() int {
	n := b.node()
	return n.Count(0, n.Len(), newline) + 1
}

func (b *RopeBuffer) RunesInLine(line int) int {
	return utf8.RuneCount(trimEOL(b.Line(line)))
}

func (b *RopeBuffer) ClampLineCol(line, col int) (int, int) {
	if line < 0 {
		line = 0
	} else if last := b.Lines() - 1; line > last {
		line = last
	}

	if col < 0 {
		col = 0
	} else if runes := b.RunesInLine(line); col > runes {
		col = runes
	}
	return line, col
}

func (b *RopeBuffer) LineColToPos(line, col int) int {
	if col < 0 {
		panic("LineColToPos: negative column")
	}
	start, end := b.lineBounds(line)
	data := trimEOL(b.node().Slice(start, end))

	var i int
	for ; col > 0 && i < len(data); col-- {
		_, size := utf8.DecodeRune(data[i:])
		i += size
	}
	return start + i
}

func (b *RopeBuffer) PosToLineCol(pos int) (int, int) {
	n := b.node()
	if pos <= 0 {
		return 0, 0
	} else if pos > n.Len() {
		pos = n.Len()
	}

	line := n.Count(0, pos, newline)
	start, _ := b.lineBounds(line)
	return line, utf8.RuneCount(n.Slice(start, pos))
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.node().WriteTo(w)
}
