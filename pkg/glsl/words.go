package glsl

import (
	"bytes"
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Compiled expressions are shared between classifiers, which usually differ
// in only one or two categories.
var compiled *lru.Cache[string, *regexp.Regexp]

func init() {
	var err error
	compiled, err = lru.New[string, *regexp.Regexp](256)
	if err != nil {
		panic(err)
	}
}

func getCompiled(expr string) (*regexp.Regexp, error) {
	if re, ok := compiled.Get(expr); ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	compiled.Add(expr, re)
	return re, nil
}

// A Matcher finds occurrences of one category in a text. The zero Matcher,
// and the one built from no words, never matches.
type Matcher struct {
	re    *regexp.Regexp
	group int // Submatch whose bounds are reported
}

// CompileWords returns a Matcher for whole-word occurrences of words.
// Identifier characters are ASCII letters, digits and underscore, so "vec4"
// is not found inside "vec4_foo". Matching is case-sensitive.
func CompileWords(words []string) *Matcher {
	alt := wordAlternation(words)
	if alt == "" {
		return &Matcher{}
	}
	return mustMatcher(`\b(?:`+alt+`)\b`, 0)
}

// compileDirectives builds the preprocessor line matcher. The reported span
// starts at the '#' and ends after the directive name; leading indentation
// and the rest of the line are left out.
func compileDirectives(directives []string) *Matcher {
	alt := wordAlternation(directives)
	if alt == "" {
		return &Matcher{}
	}
	return mustMatcher(`(?m)^[ \t]*(#[ \t]*(?:`+alt+`))\b`, 1)
}

// CompilePattern returns a Matcher for a hand written regular expression.
// The bounds of submatch group are reported; group 0 is the whole match.
func CompilePattern(expr string, group int) (*Matcher, error) {
	re, err := getCompiled(expr)
	if err != nil {
		return nil, err
	}
	if group < 0 || group > re.NumSubexp() {
		return nil, fmt.Errorf("pattern %q has no group %d", expr, group)
	}
	return &Matcher{re: re, group: group}, nil
}

func mustMatcher(expr string, group int) *Matcher {
	m, err := CompilePattern(expr, group)
	if err != nil {
		panic("glsl: " + err.Error()) // Words are quoted, so this is a bug
	}
	return m
}

// wordAlternation joins the unique non-empty words into an alternation,
// longest first so that a literal is never shadowed by one of its prefixes.
func wordAlternation(words []string) string {
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			uniq = append(uniq, w)
		}
	}
	slices.SortFunc(uniq, func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	uniq = slices.Compact(uniq)

	var sb strings.Builder
	for i, w := range uniq {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(regexp.QuoteMeta(w))
	}
	return sb.String()
}

// FindAll returns the [start, end) bounds of every match in text, in order.
func (m *Matcher) FindAll(text []byte) [][2]int {
	if m == nil || m.re == nil {
		return nil
	}
	return m.find(text, -1)
}

// find returns the bounds of at most n matches, or all of them if n < 0.
func (m *Matcher) find(text []byte, n int) [][2]int {
	if m.group == 0 {
		idx := m.re.FindAllIndex(text, n)
		out := make([][2]int, 0, len(idx))
		for _, loc := range idx {
			if loc[0] < loc[1] {
				out = append(out, [2]int{loc[0], loc[1]})
			}
		}
		return out
	}
	idx := m.re.FindAllSubmatchIndex(text, n)
	out := make([][2]int, 0, len(idx))
	for _, loc := range idx {
		start, end := loc[2*m.group], loc[2*m.group+1]
		if start < 0 || start == end {
			continue // Group did not take part, or matched nothing
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// Next returns the first match starting at or after from. Only the line
// holding from and the text after it are searched. Matches are assumed not
// to span lines, which holds for every table pattern.
func (m *Matcher) Next(text []byte, from int) (start, end int, ok bool) {
	if m == nil || m.re == nil || from < 0 || from > len(text) {
		return 0, 0, false
	}

	// The line is searched from its start so that \b and ^ see what
	// precedes from.
	lineStart := bytes.LastIndexByte(text[:from], '\n') + 1
	lineEnd := len(text)
	if i := bytes.IndexByte(text[from:], '\n'); i >= 0 {
		lineEnd = from + i + 1
	}
	for _, b := range m.find(text[lineStart:lineEnd], -1) {
		if b[0]+lineStart >= from {
			return b[0] + lineStart, b[1] + lineStart, true
		}
	}
	if lineEnd == len(text) {
		return 0, 0, false
	}

	// Keep the newline in view for the following lines. A match on it
	// starts before them, so the one after it is taken instead.
	base := lineEnd - 1
	for _, b := range m.find(text[base:], 2) {
		if b[0] > 0 {
			return b[0] + base, b[1] + base, true
		}
	}
	return 0, 0, false
}

// String returns the underlying expression, or "" for a Matcher that never
// matches.
func (m *Matcher) String() string {
	if m == nil || m.re == nil {
		return ""
	}
	return m.re.String()
}
