package glsl

import (
	"errors"
	"fmt"
)

// A Category is the lexical class given to a highlighted token.
type Category uint8

const (
	Preprocessor Category = iota
	Type
	DeprecatedKeyword
	ReservedKeyword
	Qualifier
	Keyword
	PreprocessorBuiltin
	DeprecatedBuiltin
	Builtin
	DeprecatedVariable
	Variable
	Extension

	numCategories int = iota
)

// ErrUnknownCategory is returned by ParseCategory for names it does not know.
var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [numCategories]string{
	Preprocessor:        "preprocessor",
	Type:                "type",
	DeprecatedKeyword:   "deprecated-keyword",
	ReservedKeyword:     "reserved-keyword",
	Qualifier:           "qualifier",
	Keyword:             "keyword",
	PreprocessorBuiltin: "preprocessor-builtin",
	DeprecatedBuiltin:   "deprecated-builtin",
	Builtin:             "builtin",
	DeprecatedVariable:  "deprecated-variable",
	Variable:            "variable",
	Extension:           "extension",
}

// precedenceOrder ranks the categories from strongest to weakest. When a
// token is matched by more than one category, the earliest one here wins.
var precedenceOrder = [numCategories]Category{
	Preprocessor,
	Type,
	DeprecatedKeyword,
	ReservedKeyword,
	Qualifier,
	Keyword,
	PreprocessorBuiltin,
	DeprecatedBuiltin,
	Builtin,
	DeprecatedVariable,
	Variable,
	Extension,
}

// Categories returns every Category in precedence order. The returned slice
// is a copy and can be modified by the caller.
func Categories() []Category {
	out := make([]Category, numCategories)
	copy(out, precedenceOrder[:])
	return out
}

func (c Category) String() string {
	if int(c) < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return int(c) < numCategories
}

// Precedence returns the rank of c, zero being the strongest.
func (c Category) Precedence() int {
	for i, p := range precedenceOrder {
		if p == c {
			return i
		}
	}
	return numCategories
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// MarshalText lets categories be used as JSON and YAML map keys.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
