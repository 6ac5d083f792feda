package main

import (
	"log/slog"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	"github.com/go-enry/go-enry/v2"
)

// enryGLSL is the linguist name of the language.
const enryGLSL = "GLSL"

// IsGLSLFile reports whether path holds GLSL source. Known suffixes decide
// right away; other names are left to linguist's heuristics on content.
func IsGLSLFile(path string, content []byte) bool {
	if glsl.HasGLSLSuffix(path) {
		return true
	}
	lang := enry.GetLanguage(path, content)
	slog.Debug("Detected language", slog.String("path", path), slog.String("language", lang))
	return lang == enryGLSL
}
