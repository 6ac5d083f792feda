package glsl

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrOutOfRange is returned when a requested range does not lie within the
// text being classified.
var ErrOutOfRange = errors.New("range out of bounds")

// A Span is one classified token: the bytes text[Start:End] belong to
// Category.
type Span struct {
	Start    int      `json:"start"`
	End      int      `json:"end"` // Exclusive
	Category Category `json:"category"`
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Text returns the bytes of src covered by s as a string.
func (s Span) Text(src []byte) string { return string(src[s.Start:s.End]) }

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Category, s.Start, s.End)
}

// Config configures a Classifier.
type Config struct {
	// Additional words merged into the reference tables.
	Additional Registry

	// ManBaseURL is the prefix of documentation URLs. DefaultManBaseURL is
	// used when empty.
	ManBaseURL string

	// Warn, if set, is told about every Additional entry that was dropped.
	Warn WarnFunc
}

// A Classifier assigns categories to the tokens of GLSL source text. It is
// immutable once built and may be used from several goroutines.
type Classifier struct {
	table      Table
	matchers   [numCategories][]*Matcher
	manBaseURL string
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	return New(Config{})
})

// Default returns the Classifier for the reference tables without additions.
func Default() *Classifier {
	return defaultClassifier()
}

// New builds a Classifier from the reference tables plus cfg.Additional.
func New(cfg Config) *Classifier {
	table := DefaultTable()
	table.Merge(cfg.Additional, cfg.Warn)

	c := &Classifier{
		table:      table,
		manBaseURL: cfg.ManBaseURL,
	}
	if c.manBaseURL == "" {
		c.manBaseURL = DefaultManBaseURL
	}

	for _, cat := range precedenceOrder {
		words := table.Words[cat]
		if cat == Preprocessor {
			c.matchers[cat] = append(c.matchers[cat], compileDirectives(words))
		} else if len(words) > 0 {
			c.matchers[cat] = append(c.matchers[cat], CompileWords(words))
		}
		if expr, ok := table.Patterns[cat]; ok {
			c.matchers[cat] = append(c.matchers[cat], mustMatcher(expr, 0))
		}
	}
	return c
}

// Table returns a copy of the merged tables the Classifier was built from.
func (c *Classifier) Table() Table {
	return c.table.Clone()
}

// Classify returns the non-overlapping spans of text, sorted by Start.
// Categories are applied in precedence order, and a match that overlaps an
// already accepted span is dropped as a whole.
func (c *Classifier) Classify(text []byte) []Span {
	var spans []Span
	taken := make([]bool, len(text)) // Bytes covered by an accepted span
	for _, cat := range precedenceOrder {
		for _, m := range c.matchers[cat] {
			for _, b := range m.FindAll(text) {
				if slices.Contains(taken[b[0]:b[1]], true) {
					continue
				}
				for i := b[0]; i < b[1]; i++ {
					taken[i] = true
				}
				spans = append(spans, Span{Start: b[0], End: b[1], Category: cat})
			}
		}
	}
	slices.SortFunc(spans, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })
	return spans
}

// ClassifyRange returns the spans of text that overlap [start, end). The
// result is the same as filtering Classify(text), but only the lines touched
// by the range are scanned. Bounds outside text are an error, never clamped.
func (c *Classifier) ClassifyRange(text []byte, start, end int) ([]Span, error) {
	if start < 0 || end > len(text) || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) in text of length %d", ErrOutOfRange, start, end, len(text))
	}
	if start == end {
		return nil, nil
	}

	// Every category matches within a single line.
	lineStart := bytes.LastIndexByte(text[:start], '\n') + 1
	lineEnd := len(text)
	if i := bytes.IndexByte(text[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}

	spans := c.Classify(text[lineStart:lineEnd])
	out := spans[:0]
	for _, s := range spans {
		s.Start += lineStart
		s.End += lineStart
		if s.End > start && s.Start < end {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Lookup returns the category word would get if it stood alone.
func (c *Classifier) Lookup(word string) (Category, bool) {
	spans := c.Classify([]byte(word))
	if len(spans) != 1 || spans[0].Start != 0 || spans[0].End != len(word) {
		return 0, false
	}
	return spans[0].Category, true
}
