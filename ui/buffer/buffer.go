package buffer

import (
	"io"
)

// A Buffer is a wrapper around any text store (a rope, a gap buffer) that
// can be used by the viewer. Lines and columns start at zero; columns count
// runes, positions count bytes.
//
// Lines out of range are panics. If you are unsure your position may be out
// of bounds, use ClampLineCol() or compare with Lines() first.
type Buffer interface {
	// Line returns the bytes of the given line, including the line delimiter.
	// Data returned may or may not be a copy: do not write to it.
	Line(line int) []byte

	// Slice returns the bytes in [start, end). Do not write to the result.
	Slice(start, end int) []byte

	// Bytes returns all of the bytes in the buffer. This is very likely to
	// copy the whole buffer; the highlighter only calls it when the base
	// colorer has to run again.
	Bytes() []byte

	// Insert copies value into the buffer at line, col.
	Insert(line, col int, value []byte)

	// Remove deletes the runes from startLine, startCol up to, but not
	// including, endLine, endCol.
	Remove(startLine, startCol, endLine, endCol int)

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines in the buffer. An empty buffer still
	// has one line.
	Lines() int

	// RunesInLine returns the number of runes in the given line, excluding
	// the line delimiter.
	RunesInLine(line int) int

	// ClampLineCol clamps line to the buffer, then col to the line. The
	// column may point just past the last rune, at the line delimiter.
	ClampLineCol(line, col int) (int, int)

	// LineColToPos returns the byte offset of the rune at line, col. A col
	// past the end of the line yields the offset of the line delimiter.
	LineColToPos(line, col int) int

	// PosToLineCol converts a byte offset into a line and column. The
	// position is clamped to the buffer.
	PosToLineCol(pos int) (int, int)

	WriteTo(w io.Writer) (int64, error)
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
