package buffer

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// A Region is a byte range of the whole buffer drawn with one face.
type Region struct {
	Start  int
	End    int // Exclusive
	Syntax Syntax
}

// A BaseColorer finds the comments, strings and numbers of a C-like source.
// These are the things the GLSL classifier leaves alone, and they take
// precedence over it: a keyword inside a comment stays a comment.
type BaseColorer struct {
	lexer chroma.Lexer
}

// NewBaseColorer uses the chroma lexer called name, falling back to the C
// lexer, then to plain text.
func NewBaseColorer(name string) *BaseColorer {
	lexer := lexers.Get(name)
	if lexer == nil {
		lexer = lexers.Get("c")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &BaseColorer{lexer: chroma.Coalesce(lexer)}
}

// Regions returns the base regions of text in order. Any lexer error just
// yields fewer regions.
func (b *BaseColorer) Regions(text []byte) []Region {
	// EnsureLF would rewrite CRLF and shift every offset after it.
	it, err := b.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, string(text))
	if err != nil {
		return nil
	}

	var regions []Region
	var pos int
	for _, tok := range it.Tokens() {
		start := pos
		pos += len(tok.Value)
		syn, ok := baseSyntax(tok.Type)
		if !ok || start >= len(text) {
			continue
		}
		end := min(pos, len(text)) // Some lexers append a final newline
		if n := len(regions); n > 0 && regions[n-1].End == start && regions[n-1].Syntax == syn {
			regions[n-1].End = end
			continue
		}
		regions = append(regions, Region{Start: start, End: end, Syntax: syn})
	}
	return regions
}

func baseSyntax(t chroma.TokenType) (Syntax, bool) {
	switch {
	case t.InSubCategory(chroma.CommentPreproc):
		return Default, false // Directives belong to the classifier
	case t.InCategory(chroma.Comment):
		return Comment, true
	case t.InSubCategory(chroma.LiteralString):
		return String, true
	case t.InSubCategory(chroma.LiteralNumber):
		return Number, true
	}
	return Default, false
}
