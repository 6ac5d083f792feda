package glsl

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

// ErrMalformedWord is reported for registry entries that are not GLSL
// identifiers.
var ErrMalformedWord = errors.New("malformed word")

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// A Registry holds extra words per category, e.g. types declared by an
// engine's shader headers. Merging a Registry only ever adds words.
type Registry map[Category][]string

// A WarnFunc receives the registry entries that were dropped while merging.
type WarnFunc func(c Category, word string, err error)

// Add appends words to category c and returns the registry for chaining.
// A nil Registry is allocated.
func (r Registry) Add(c Category, words ...string) Registry {
	if r == nil {
		r = make(Registry)
	}
	r[c] = append(r[c], words...)
	return r
}

// IsIdentifier reports whether word is made only of identifier characters
// and does not start with a digit.
func IsIdentifier(word string) bool {
	return identifierRe.MatchString(word)
}

// Merge adds the well-formed words of reg to t and returns how many were
// new. Unknown categories and malformed words are dropped and handed to warn
// when it is not nil. Words already present are skipped silently.
func (t *Table) Merge(reg Registry, warn WarnFunc) int {
	if t.Words == nil {
		t.Words = make(map[Category][]string)
	}

	// Walk the categories in a fixed order so warnings are reproducible.
	cats := make([]Category, 0, len(reg))
	for c := range reg {
		cats = append(cats, c)
	}
	slices.Sort(cats)

	var added int
	for _, c := range cats {
		for _, w := range reg[c] {
			if err := validateWord(c, w); err != nil {
				if warn != nil {
					warn(c, w, err)
				}
				continue
			}
			if slices.Contains(t.Words[c], w) {
				continue
			}
			t.Words[c] = append(t.Words[c], w)
			added++
		}
	}
	return added
}

func validateWord(c Category, w string) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	if !IsIdentifier(w) {
		if c == Preprocessor && len(w) > 0 && w[0] == '#' {
			return fmt.Errorf("%w: directive %q must be given without '#'", ErrMalformedWord, w)
		}
		return fmt.Errorf("%w: %q is not an identifier", ErrMalformedWord, w)
	}
	return nil
}
