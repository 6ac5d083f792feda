// Package glsl classifies the tokens of OpenGL Shading Language source for
// syntax highlighting.
//
// The package holds the GLSL word tables, compiles each category into a
// whole-word matcher and resolves tokens claimed by several categories with
// a fixed precedence order. It does not parse: comments, strings and
// indentation are left to a general C-like colorer.
package glsl

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultManBaseURL is where the OpenGL 4 reference pages live.
const DefaultManBaseURL = "https://registry.khronos.org/OpenGL-Refpages/gl4/html/"

const manPageSuffix = ".xhtml"

// ErrNotBuiltin is returned when documentation is requested for a word that
// is not a builtin function.
var ErrNotBuiltin = errors.New("not a builtin function")

// Filetypes are the file suffixes routed to GLSL.
var Filetypes = []string{
	".glsl", ".vert", ".frag", ".geom", ".tesc", ".tese", ".mesh", ".task",
	".comp", ".rgen", ".rint", ".rchit", ".rahit", ".rcall", ".rmiss",
	".vs", ".fs", ".gs",
}

// HasGLSLSuffix reports whether the file name ends in one of Filetypes.
func HasGLSLSuffix(name string) bool {
	return slices.Contains(Filetypes, strings.ToLower(filepath.Ext(name)))
}

// DocURL joins the reference page URL for name.
func DocURL(base, name string) string {
	return base + name + manPageSuffix
}

// DocURL returns the reference page URL of a builtin or deprecated builtin
// function.
func (c *Classifier) DocURL(name string) (string, error) {
	cat, ok := c.Lookup(name)
	if !ok || (cat != Builtin && cat != DeprecatedBuiltin) {
		return "", fmt.Errorf("%w: %q", ErrNotBuiltin, name)
	}
	return DocURL(c.manBaseURL, name), nil
}
