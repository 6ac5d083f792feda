package buffer

import (
	"sort"
	"unicode/utf8"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// A Match is one highlighted run of a line, in rune columns.
type Match struct {
	Col    int
	EndCol int // Inclusive
	Syntax Syntax
}

// ByCol implements sort.Interface for []Match based on the Col field.
type ByCol []Match

func (c ByCol) Len() int           { return len(c) }
func (c ByCol) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }
func (c ByCol) Less(i, j int) bool { return c[i].Col < c[j].Col }

// lineCacheSize bounds the number of distinct line texts whose spans are
// remembered. Shaders repeat lines like "}" and "#endif" a lot.
const lineCacheSize = 4096

// A Highlighter can answer how to color any part of a provided Buffer. It
// keeps the matches of every line until the line is invalidated, so only
// edited lines are classified again.
type Highlighter struct {
	Buffer      Buffer
	Language    *Language
	Colorscheme *Colorscheme

	lineMatches [][]Match // nil entries are invalidated
	base        []Region
	baseDirty   bool
	spans       *lru.Cache[string, []glsl.Span]
}

func NewHighlighter(buffer Buffer, lang *Language, colorscheme *Colorscheme) *Highlighter {
	spans, err := lru.New[string, []glsl.Span](lineCacheSize)
	if err != nil {
		panic(err) // Only fails for a non-positive size
	}
	return &Highlighter{
		Buffer:      buffer,
		Language:    lang,
		Colorscheme: colorscheme,
		lineMatches: make([][]Match, buffer.Lines()),
		baseDirty:   true,
		spans:       spans,
	}
}

// UpdateLines forces the matches for lines between startLine and endLine,
// inclusively, to be computed again. It is more efficient to mark lines as
// invalidated when changes occur and call UpdateInvalidatedLines(...).
func (h *Highlighter) UpdateLines(startLine, endLine int) {
	lines := h.resize()
	if h.baseDirty {
		h.base = nil
		if h.Language != nil && h.Language.Base != nil {
			h.base = h.Language.Base.Regions(h.Buffer.Bytes())
		}
		h.baseDirty = false

		// An edit can open or close a comment far away from the edited
		// line, so every line is due. Classification is cached per line
		// text, which keeps this cheap.
		clear(h.lineMatches)
	}

	for line := max(startLine, 0); line <= endLine && line < lines; line++ {
		h.lineMatches[line] = h.matchLine(line)
	}
}

// resize fits the match cache to the buffer and returns its line count.
func (h *Highlighter) resize() int {
	lines := h.Buffer.Lines()
	if len(h.lineMatches) < lines {
		h.lineMatches = append(h.lineMatches, make([][]Match, lines-len(h.lineMatches))...)
	} else if len(h.lineMatches) > lines {
		h.lineMatches = h.lineMatches[:lines]
	}
	return lines
}

func (h *Highlighter) matchLine(line int) []Match {
	text := trimEOL(h.Buffer.Line(line))
	lineStart := h.Buffer.LineColToPos(line, 0)
	lineEnd := lineStart + len(text)
	matches := make([]Match, 0)

	// Base regions first; classifier spans may not overlap them.
	var taken [][2]int
	i := sort.Search(len(h.base), func(i int) bool { return h.base[i].End > lineStart })
	for ; i < len(h.base) && h.base[i].Start < lineEnd; i++ {
		start := max(h.base[i].Start, lineStart) - lineStart
		end := min(h.base[i].End, lineEnd) - lineStart
		if start >= end {
			continue
		}
		taken = append(taken, [2]int{start, end})
		matches = append(matches, h.toMatch(text, start, end, h.base[i].Syntax))
	}

	for _, s := range h.classify(text) {
		if overlapsAny(taken, s.Start, s.End) {
			continue
		}
		matches = append(matches, h.toMatch(text, s.Start, s.End, FaceOf(s.Category)))
	}

	sort.Sort(ByCol(matches))
	return matches
}

func (h *Highlighter) classify(text []byte) []glsl.Span {
	if h.Language == nil || h.Language.Classifier == nil {
		return nil
	}
	key := string(text)
	if spans, ok := h.spans.Get(key); ok {
		return spans
	}
	// Every category is line-local, so classifying the line alone gives the
	// same spans as classifying the whole buffer.
	spans := h.Language.Classifier.Classify(text)
	h.spans.Add(key, spans)
	return spans
}

func (h *Highlighter) toMatch(text []byte, start, end int, syn Syntax) Match {
	col := utf8.RuneCount(text[:start])
	return Match{
		Col:    col,
		EndCol: col + utf8.RuneCount(text[start:end]) - 1,
		Syntax: syn,
	}
}

func overlapsAny(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && r[0] < end {
			return true
		}
	}
	return false
}

// UpdateInvalidatedLines only updates the highlighting for lines that are invalidated
// between lines startLine and endLine, inclusively.
func (h *Highlighter) UpdateInvalidatedLines(startLine, endLine int) {
	if h.baseDirty {
		h.UpdateLines(startLine, endLine) // Every line is due anyway
		return
	}
	h.resize()

	// Move startLine to first line with invalidated changes
	startLine = max(startLine, 0)
	for startLine <= endLine && startLine < len(h.lineMatches) {
		if h.lineMatches[startLine] == nil {
			break
		}
		startLine++
	}

	// Move endLine back to last line at or before endLine with invalidated changes
	if endLine >= len(h.lineMatches) {
		endLine = len(h.lineMatches) - 1
	}
	for endLine >= startLine {
		if h.lineMatches[endLine] == nil {
			break
		}
		endLine--
	}

	if startLine > endLine {
		return // Do nothing; no invalidated lines
	}

	h.UpdateLines(startLine, endLine)
}

func (h *Highlighter) HasInvalidatedLines(startLine, endLine int) bool {
	for i := startLine; i <= endLine && i < len(h.lineMatches); i++ {
		if h.lineMatches[i] == nil {
			return true
		}
	}
	return false
}

// InvalidateLines marks lines startLine to endLine for classification.
// Base regions are byte offsets into the whole buffer, so any edit makes
// them stale.
func (h *Highlighter) InvalidateLines(startLine, endLine int) {
	for i := max(startLine, 0); i <= endLine && i < len(h.lineMatches); i++ {
		h.lineMatches[i] = nil
	}
	h.baseDirty = true
}

// InvalidateAll drops every match, e.g. after the buffer was replaced.
func (h *Highlighter) InvalidateAll() {
	h.lineMatches = make([][]Match, h.Buffer.Lines())
	h.baseDirty = true
}

// GetLineMatches returns the matches of line, sorted by column. Lines that
// were never updated have no matches.
func (h *Highlighter) GetLineMatches(line int) []Match {
	if line < 0 || line >= len(h.lineMatches) {
		return nil
	}
	return h.lineMatches[line]
}

func (h *Highlighter) GetStyle(match Match) tcell.Style {
	return h.Colorscheme.GetStyle(match.Syntax)
}
