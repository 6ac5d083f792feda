package buffer

import (
	"fmt"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
)

// A Syntax is a face: the name a Colorscheme attaches a style to.
type Syntax uint8

const (
	Default Syntax = iota
	Column         // Not necessarily a Syntax; useful for Colorscheming editor column
	Keyword
	String
	Type
	Number
	Builtin
	Comment
	Preprocessor
	Qualifier
	DeprecatedKeyword
	ReservedKeyword
	DeprecatedBuiltin
	Variable
	DeprecatedVariable
	Extension

	numSyntaxes int = iota
)

var syntaxNames = [numSyntaxes]string{
	Default:            "default",
	Column:             "column",
	Keyword:            "keyword",
	String:             "string",
	Type:               "type",
	Number:             "number",
	Builtin:            "builtin",
	Comment:            "comment",
	Preprocessor:       "preprocessor",
	Qualifier:          "qualifier",
	DeprecatedKeyword:  "deprecated-keyword",
	ReservedKeyword:    "reserved-keyword",
	DeprecatedBuiltin:  "deprecated-builtin",
	Variable:           "variable",
	DeprecatedVariable: "deprecated-variable",
	Extension:          "extension",
}

func (s Syntax) String() string {
	if int(s) < numSyntaxes {
		return syntaxNames[s]
	}
	return fmt.Sprintf("syntax(%d)", uint8(s))
}

// ParseSyntax returns the Syntax named name, as used in configuration files.
func ParseSyntax(name string) (Syntax, error) {
	for i, n := range syntaxNames {
		if n == name {
			return Syntax(i), nil
		}
	}
	return Default, fmt.Errorf("unknown face %q", name)
}

// Faces maps each classifier category onto the face it is drawn with.
// Preprocessor builtins such as __LINE__ share the keyword face.
var Faces = map[glsl.Category]Syntax{
	glsl.Preprocessor:        Preprocessor,
	glsl.Type:                Type,
	glsl.DeprecatedKeyword:   DeprecatedKeyword,
	glsl.ReservedKeyword:     ReservedKeyword,
	glsl.Qualifier:           Qualifier,
	glsl.Keyword:             Keyword,
	glsl.PreprocessorBuiltin: Keyword,
	glsl.DeprecatedBuiltin:   DeprecatedBuiltin,
	glsl.Builtin:             Builtin,
	glsl.DeprecatedVariable:  DeprecatedVariable,
	glsl.Variable:            Variable,
	glsl.Extension:           Extension,
}

type Language struct {
	Name       string
	Filetypes  []string // .frag, .vert, etc.
	Classifier *glsl.Classifier
	Base       *BaseColorer // Comments, strings and numbers; may be nil
}

// NewGLSL returns the GLSL Language backed by classifier. A nil classifier
// means glsl.Default().
func NewGLSL(classifier *glsl.Classifier) *Language {
	if classifier == nil {
		classifier = glsl.Default()
	}
	return &Language{
		Name:       "GLSL",
		Filetypes:  glsl.Filetypes,
		Classifier: classifier,
		Base:       NewBaseColorer("glsl"),
	}
}

// FaceOf returns the face of a classified span.
func FaceOf(c glsl.Category) Syntax {
	if s, ok := Faces[c]; ok {
		return s
	}
	return Default
}
