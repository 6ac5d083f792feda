package glsl

import (
	"errors"
	"testing"
)

func TestDocURL(t *testing.T) {
	c := Default()

	url, err := c.DocURL("texture")
	if err != nil {
		t.Fatalf("DocURL(texture): %v", err)
	}
	if want := DefaultManBaseURL + "texture.xhtml"; url != want {
		t.Errorf("DocURL(texture) = %q, want %q", url, want)
	}

	if _, err := c.DocURL("texture2D"); err != nil {
		t.Errorf("deprecated builtins have reference pages too: %v", err)
	}

	for _, word := range []string{"vec4", "gl_Position", "myFunction", ""} {
		if _, err := c.DocURL(word); !errors.Is(err, ErrNotBuiltin) {
			t.Errorf("DocURL(%q) error = %v, want ErrNotBuiltin", word, err)
		}
	}

	custom := New(Config{ManBaseURL: "https://docs.gl/sl4/"})
	if url, _ := custom.DocURL("mix"); url != "https://docs.gl/sl4/mix.xhtml" {
		t.Errorf("DocURL with custom base = %q", url)
	}
}

func TestHasGLSLSuffix(t *testing.T) {
	for name, want := range map[string]bool{
		"shader.frag":      true,
		"dir/blur.VERT":    true,
		"raytrace.rchit":   true,
		"common.glsl":      true,
		"main.go":          false,
		"README":           false,
		"shader.frag.orig": false,
		"vert":             false,
	} {
		if got := HasGLSLSuffix(name); got != want {
			t.Errorf("HasGLSLSuffix(%q) = %v, want %v", name, got, want)
		}
	}
}
