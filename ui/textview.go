package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	"github.com/fivemoreminix/glslmode/ui/buffer"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrNoWord is returned when an action needs a word under the cursor.
var ErrNoWord = errors.New("no word under cursor")

// TextView is a read-only, highlighted view of GLSL source. It tells the
// category of the word under its cursor and can copy the reference page of
// a builtin function.
type TextView struct {
	Buffer      buffer.Buffer
	Highlighter *buffer.Highlighter
	LineNumbers bool   // Whether to render line numbers (and therefore the column)
	TabSize     int    // Columns a '\t' takes
	FilePath    string // May be empty for text that did not come from a file

	// CopyText, if set, receives documentation URLs copied with Ctrl+D.
	CopyText func(string) error

	screen           tcell.Screen // We keep our own reference to the screen for cursor purposes.
	cursor           buffer.Cursor
	scrollx, scrolly int // X and Y offset of view, known as scroll

	message     string // One-shot message replacing the status until the cursor moves
	messageKind StatusKind

	baseComponent
}

// NewTextView shows contents highlighted as lang with colorscheme.
func NewTextView(screen tcell.Screen, filePath string, contents []byte, lang *buffer.Language, colorscheme *buffer.Colorscheme, theme *Theme) *TextView {
	tv := &TextView{
		LineNumbers:   true,
		TabSize:       4,
		FilePath:      filePath,
		screen:        screen,
		baseComponent: baseComponent{theme: theme},
	}
	tv.Buffer = buffer.NewRopeBuffer(contents)
	tv.cursor = buffer.NewCursor(tv.Buffer)
	tv.Highlighter = buffer.NewHighlighter(tv.Buffer, lang, colorscheme)
	return tv
}

// SetContents replaces the text, e.g. after the file changed on disk. The
// cursor keeps its line and column as far as the new text allows.
func (t *TextView) SetContents(contents []byte) {
	line, col := t.cursor.GetLineCol()
	t.Buffer = buffer.NewRopeBuffer(contents)
	t.cursor = buffer.NewCursor(t.Buffer).SetLineCol(line, col)
	t.Highlighter.Buffer = t.Buffer
	t.Highlighter.InvalidateAll()
	t.ScrollToCursor()
}

func (t *TextView) GetCursor() buffer.Cursor {
	return t.cursor
}

func (t *TextView) SetCursor(newCursor buffer.Cursor) {
	t.cursor = newCursor
	t.message = ""
	t.updateCursorVisibility()
}

// GotoLine moves the cursor to the start of a one-based line number.
func (t *TextView) GotoLine(lineNum int) {
	t.SetCursor(t.cursor.SetLineCol(lineNum-1, 0))
	t.ScrollToCursor()
}

// WordCategory returns the word under the cursor and its category. ok is
// false when the word is not classified.
func (t *TextView) WordCategory() (word string, cat glsl.Category, ok bool) {
	word, _, _, isWord := t.cursor.Word()
	if !isWord || t.Highlighter.Language == nil || t.Highlighter.Language.Classifier == nil {
		return word, 0, false
	}
	cat, ok = t.Highlighter.Language.Classifier.Lookup(word)
	return word, cat, ok
}

// Status is the message for the status bar: the last action's result, or
// what the word under the cursor is.
func (t *TextView) Status() (string, StatusKind) {
	if t.message != "" {
		return t.message, t.messageKind
	}
	word, cat, ok := t.WordCategory()
	switch {
	case ok:
		return fmt.Sprintf("%s: %s", word, cat), StatusPlain
	case word != "":
		return word, StatusPlain
	}
	return "", StatusPlain
}

// SetMessage shows msg in the status until the cursor moves.
func (t *TextView) SetMessage(msg string, kind StatusKind) {
	t.message, t.messageKind = msg, kind
}

// Position is the one-based line and column of the cursor for display.
func (t *TextView) Position() string {
	line, col := t.cursor.GetLineCol()
	return fmt.Sprintf("%d:%d", line+1, col+1)
}

// CopyDocURL copies the reference page URL of the builtin under the cursor
// with CopyText and returns it.
func (t *TextView) CopyDocURL() (string, error) {
	word, _, _, ok := t.cursor.Word()
	if !ok {
		return "", ErrNoWord
	}
	lang := t.Highlighter.Language
	if lang == nil || lang.Classifier == nil {
		return "", fmt.Errorf("%w: %q", glsl.ErrNotBuiltin, word)
	}
	url, err := lang.Classifier.DocURL(word)
	if err != nil {
		return "", err
	}
	if t.CopyText != nil {
		if err := t.CopyText(url); err != nil {
			return "", fmt.Errorf("copy %s: %w", url, err)
		}
	}
	return url, nil
}

// lineText returns a line without its delimiter.
func (t *TextView) lineText(line int) []byte {
	return bytes.TrimRight(t.Buffer.Line(line), "\r\n")
}

func (t *TextView) runeWidth(r rune) int {
	if r == '\t' {
		return t.TabSize
	}
	return runewidth.RuneWidth(r)
}

// visualCol returns the screen offset of rune column col within text.
func (t *TextView) visualCol(text []byte, col int) int {
	var x int
	for ; col > 0 && len(text) > 0; col-- {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		x += t.runeWidth(r)
	}
	return x
}

// updateCursorVisibility sets the position of the terminal's cursor with the
// cursor of the TextView. Shows the cursor only while focused.
func (t *TextView) updateCursorVisibility() {
	if t.screen == nil {
		return
	}
	if !t.focused {
		t.screen.HideCursor()
		return
	}
	line, col := t.cursor.GetLineCol()
	x := t.visualCol(t.lineText(line), col)
	t.screen.ShowCursor(t.x+t.getColumnWidth()+x-t.scrollx, t.y+line-t.scrolly)
}

// Scroll the screen if the cursor is out of view.
func (t *TextView) ScrollToCursor() {
	line, col := t.cursor.GetLineCol()

	// Scroll the screen when going to lines out of view
	if line >= t.scrolly+t.height { // If the new line is below view...
		t.scrolly = line - t.height + 1 // Scroll just enough to view that line
	} else if line < t.scrolly { // If the new line is above view
		t.scrolly = line
	}

	textWidth := t.width - t.getColumnWidth()
	x := t.visualCol(t.lineText(line), col)

	// Scroll the screen horizontally when going to columns out of view
	if x >= t.scrollx+textWidth { // If the new column is right of view
		t.scrollx = x - textWidth + 1 // Scroll just enough to view that column
	} else if x < t.scrollx { // If the new column is left of view
		t.scrollx = x
	}
	t.scrolly, t.scrollx = max(t.scrolly, 0), max(t.scrollx, 0)
}

// getColumnWidth returns the width of the line numbers column if it is present.
func (t *TextView) getColumnWidth() int {
	var columnWidth int
	if t.LineNumbers {
		// Set columnWidth to max count of line number digits
		columnWidth = max(3, 1+len(strconv.Itoa(t.Buffer.Lines()))) // Column has minimum width of 2
	}
	return columnWidth
}

// Draw renders the TextView component.
func (t *TextView) Draw(s tcell.Screen) {
	columnWidth := t.getColumnWidth()
	bufferLines := t.Buffer.Lines()

	columnStyle := t.Highlighter.Colorscheme.GetStyle(buffer.Column)
	defaultStyle := t.Highlighter.Colorscheme.GetStyle(buffer.Default)

	t.Highlighter.UpdateInvalidatedLines(t.scrolly, t.scrolly+(t.height-1))

	for lineY := t.y; lineY < t.y+t.height; lineY++ { // For each line we can draw...
		line := lineY + t.scrolly - t.y // The line number being drawn (starts at zero)

		DrawRect(s, t.x+columnWidth, lineY, t.width-columnWidth, 1, ' ', defaultStyle)

		lineNumStr := "" // Only set for lines within the buffer (not view)
		if line < bufferLines {
			lineNumStr = strconv.Itoa(line + 1)
			t.drawLine(s, line, lineY, t.x+columnWidth, defaultStyle)
		}

		if columnWidth > 0 {
			columnStr := fmt.Sprintf("%*s│", columnWidth-1, lineNumStr) // Right align line number
			DrawStr(s, t.x, lineY, t.x+columnWidth, columnStr, columnStyle)
		}
	}

	t.updateCursorVisibility()
}

// drawLine draws the visible part of a buffer line starting at screen column left.
func (t *TextView) drawLine(s tcell.Screen, line, lineY, left int, defaultStyle tcell.Style) {
	right := t.x + t.width
	text := t.lineText(line)
	matches := t.Highlighter.GetLineMatches(line)

	var matchIdx int
	var x int // Offset into the line, in screen columns
	for col := 0; len(text) > 0; col++ {
		r, size := utf8.DecodeRune(text)
		text = text[size:]

		for matchIdx < len(matches) && matches[matchIdx].EndCol < col { // Passed that match
			matchIdx++
		}
		style := defaultStyle
		if matchIdx < len(matches) && matches[matchIdx].Col <= col {
			style = t.Highlighter.GetStyle(matches[matchIdx])
		}

		w := t.runeWidth(r)
		screenX := left + x - t.scrollx
		if screenX >= right {
			break
		}
		if r == '\t' {
			DrawRect(s, max(screenX, left), lineY, min(screenX+w, right)-max(screenX, left), 1, ' ', style)
		} else if screenX >= left && screenX+w <= right {
			s.SetContent(screenX, lineY, r, nil, style)
		}
		x += w
	}
}

// HandleEvent allows the TextView to handle `event` if it chooses, returns
// whether the TextView handled the event.
func (t *TextView) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ev.Key() {
	// Cursor movement
	case tcell.KeyUp:
		t.SetCursor(t.cursor.Up())
	case tcell.KeyDown:
		t.SetCursor(t.cursor.Down())
	case tcell.KeyLeft:
		t.SetCursor(t.cursor.Left())
	case tcell.KeyRight:
		t.SetCursor(t.cursor.Right())
	case tcell.KeyHome:
		t.SetCursor(t.cursor.Home())
	case tcell.KeyEnd:
		t.SetCursor(t.cursor.End())
	case tcell.KeyPgUp:
		line, col := t.cursor.GetLineCol()
		t.SetCursor(t.cursor.SetLineCol(line-t.height, col)) // Go a page up
	case tcell.KeyPgDn:
		line, col := t.cursor.GetLineCol()
		t.SetCursor(t.cursor.SetLineCol(line+t.height, col)) // Go a page down

	case tcell.KeyCtrlD:
		url, err := t.CopyDocURL()
		if err != nil {
			t.SetMessage(err.Error(), StatusError)
		} else {
			t.SetMessage("copied "+url, StatusInfo)
		}
		return true
	default:
		return false
	}
	t.ScrollToCursor()
	t.updateCursorVisibility()
	return true
}

// SetFocused sets whether the TextView is focused. When focused, the cursor is set visible
// and its position is updated on every event.
func (t *TextView) SetFocused(v bool) {
	t.focused = v
	t.updateCursorVisibility()
}
