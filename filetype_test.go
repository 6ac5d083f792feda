package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGLSLFile(t *testing.T) {
	cases := []struct {
		path    string
		content string
		want    bool
	}{
		{"shader.frag", "", true},
		{"SHADER.VERT", "", true},
		{"shaders/light.glsl", "", true},
		{"raygen.rgen", "", true},
		{"post.glslv", "void main() {}\n", true},
		{"main.go", "package main\n\nfunc main() {}\n", false},
		{"README.md", "# shaders\n", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsGLSLFile(c.path, []byte(c.content)), c.path)
	}
}
