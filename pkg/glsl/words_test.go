package glsl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		input string
		want  [][2]int
	}{
		{
			name:  "no words never matches",
			words: nil,
			input: "vec4 anything",
			want:  nil,
		},
		{
			name:  "only empty words",
			words: []string{"", ""},
			input: "vec4",
			want:  nil,
		},
		{
			name:  "whole words only",
			words: []string{"vec", "vec4", "vec4"},
			input: "vec vec4 vec4x _vec4 vec4_",
			want:  [][2]int{{0, 3}, {4, 8}},
		},
		{
			name:  "underscore is part of a word",
			words: []string{"__LINE__"},
			input: "__LINE__ ___LINE__ (__LINE__)",
			want:  [][2]int{{0, 8}, {20, 28}},
		},
		{
			name:  "case sensitive",
			words: []string{"Float"},
			input: "float FLOAT Float",
			want:  [][2]int{{12, 17}},
		},
		{
			name:  "metacharacters are quoted",
			words: []string{"a.b"},
			input: "axb a.b",
			want:  [][2]int{{4, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompileWords(tt.words).FindAll([]byte(tt.input))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindAll(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestCompileDirectives(t *testing.T) {
	m := compileDirectives([]string{"define", "if", "ifdef"})
	input := []byte("#ifdef A\n  #  if B\nx #define\n#defined\n\t#define C 1")
	want := [][2]int{{0, 6}, {11, 16}, {39, 46}}
	if diff := cmp.Diff(want, m.FindAll(input)); diff != "" {
		t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
	}
}

func TestMatcherNext(t *testing.T) {
	m := CompileWords([]string{"in", "out"})
	text := []byte("in vec3 a; out vec4 b; in float c;")

	var got [][2]int
	for from := 0; ; {
		start, end, ok := m.Next(text, from)
		if !ok {
			break
		}
		got = append(got, [2]int{start, end})
		from = end
	}
	want := [][2]int{{0, 2}, {11, 14}, {23, 25}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Next mismatch (-want +got):\n%s", diff)
	}

	var zero *Matcher
	if _, _, ok := zero.Next(text, 0); ok {
		t.Errorf("nil Matcher should never match")
	}
	if zero.String() != "" {
		t.Errorf("nil Matcher String() = %q, want empty", zero.String())
	}
}

func TestMatcherNextKeepsContext(t *testing.T) {
	words := CompileWords([]string{"in"})
	directives := compileDirectives([]string{"define"})
	text := []byte("xin in\nx  #define A\n  #define B\nin")

	tests := []struct {
		name string
		m    *Matcher
		from int
		want [2]int
		ok   bool
	}{
		{"inside a longer word", words, 1, [2]int{4, 6}, true},
		{"at a word", words, 4, [2]int{4, 6}, true},
		{"on a later line", words, 5, [2]int{32, 34}, true},
		{"past the end", words, 34, [2]int{}, false},
		{"directive not at line start", directives, 9, [2]int{22, 29}, true},
		{"directive after indentation", directives, 21, [2]int{22, 29}, true},
		{"no directive left", directives, 23, [2]int{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := tt.m.Next(text, tt.from)
			if ok != tt.ok {
				t.Fatalf("Next(%d) ok = %v, want %v", tt.from, ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, [2]int{start, end}); ok && diff != "" {
				t.Errorf("Next(%d) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestCompilePattern(t *testing.T) {
	if _, err := CompilePattern(`gl_(`, 0); err == nil {
		t.Errorf("expected an error for an invalid expression")
	}
	if _, err := CompilePattern(`gl_(\w+)`, 2); err == nil {
		t.Errorf("expected an error for a missing group")
	}

	m, err := CompilePattern(`gl_(\w+)`, 1)
	if err != nil {
		t.Fatalf("CompilePattern: %v", err)
	}
	want := [][2]int{{3, 11}}
	if diff := cmp.Diff(want, m.FindAll([]byte("gl_Position"))); diff != "" {
		t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
	}

	again, err := CompilePattern(`gl_(\w+)`, 1)
	if err != nil {
		t.Fatalf("CompilePattern: %v", err)
	}
	if again.re != m.re {
		t.Errorf("expected the compiled expression to be shared")
	}
}
