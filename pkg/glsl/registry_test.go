package glsl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dropped struct {
	Category Category
	Word     string
}

func TestMergeDropsMalformedWords(t *testing.T) {
	reg := Registry{
		Type:         {"ok_type", "", "1abc", "has space", "vec4"},
		Preprocessor: {"#include", "include"},
		Category(99): {"orphan"},
	}

	var got []dropped
	var errs []error
	table := DefaultTable()
	added := table.Merge(reg, func(c Category, w string, err error) {
		got = append(got, dropped{c, w})
		errs = append(errs, err)
	})

	if added != 2 {
		t.Errorf("Merge added %d words, want 2", added)
	}
	want := []dropped{
		{Preprocessor, "#include"},
		{Type, ""},
		{Type, "1abc"},
		{Type, "has space"},
		{Category(99), "orphan"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dropped words mismatch (-want +got):\n%s", diff)
	}
	for i, err := range errs[:4] {
		if !errors.Is(err, ErrMalformedWord) {
			t.Errorf("warning %d: error = %v, want ErrMalformedWord", i, err)
		}
	}
	if !errors.Is(errs[4], ErrUnknownCategory) {
		t.Errorf("warning for unknown category: error = %v", errs[4])
	}

	if !table.Contains(Type, "ok_type") || !table.Contains(Preprocessor, "include") {
		t.Errorf("well-formed words were not merged")
	}
}

func TestMergeNilWarn(t *testing.T) {
	table := DefaultTable()
	if added := table.Merge(Registry{Keyword: {"bad word", "good_word"}}, nil); added != 1 {
		t.Errorf("Merge added %d words, want 1", added)
	}
}

func TestMergeDoesNotTouchReferenceTables(t *testing.T) {
	table := DefaultTable()
	table.Merge(Registry{Keyword: {"myKeyword"}}, nil)

	if DefaultTable().Contains(Keyword, "myKeyword") {
		t.Errorf("merging leaked into the reference tables")
	}
	if Default().Table().Contains(Keyword, "myKeyword") {
		t.Errorf("merging leaked into the default classifier")
	}
}

func TestExtensionHook(t *testing.T) {
	c := New(Config{Additional: Registry{}.Add(Keyword, "myKeyword")})

	if got, ok := c.Lookup("myKeyword"); !ok || got != Keyword {
		t.Errorf("Lookup(myKeyword) = %v, %v; want %v", got, ok, Keyword)
	}

	src := []byte(sampleShader + "void main() { gl_FragColor = texture2D(tex, uv); }\n")
	if diff := cmp.Diff(Default().Classify(src), c.Classify(src)); diff != "" {
		t.Errorf("additions changed classification of existing words (-default +extended):\n%s", diff)
	}
}

func TestExtensionHookDirective(t *testing.T) {
	c := New(Config{Additional: Registry{Preprocessor: {"include"}}})
	want := []Span{{0, 8, Preprocessor}}
	if diff := cmp.Diff(want, c.Classify([]byte(`#include "lighting.glsl"`))); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensionHookStructuralCategories(t *testing.T) {
	c := New(Config{Additional: Registry{
		Variable:  {"u_time"},
		Extension: {"GL_OES_standard_derivatives"},
	}})
	src := []byte("u_time + gl_Position GL_OES_standard_derivatives")
	want := []Span{{0, 6, Variable}, {9, 20, Variable}, {21, 48, Extension}}
	if diff := cmp.Diff(want, c.Classify(src)); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestIsIdentifier(t *testing.T) {
	for word, want := range map[string]bool{
		"vec4":     true,
		"_private": true,
		"__LINE__": true,
		"a1":       true,
		"":         false,
		"1a":       false,
		"a-b":      false,
		"#define":  false,
		"añb":      false,
	} {
		if got := IsIdentifier(word); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", word, got, want)
		}
	}
}
