package ui

import (
	"github.com/gdamore/tcell/v2"
)

// A Component is anything the viewer lays out on the screen: the text view
// and the status bar. After constructing a component, call SetPos() and
// SetSize().
type Component interface {
	// A component knows its position and size, which is used to draw itself in
	// its bounding rectangle.
	Draw(tcell.Screen)
	// Components can be focused, which may affect how it handles events or draws.
	SetFocused(bool)
	// Applies the theme to the component.
	SetTheme(*Theme)

	GetPos() (x, y int)
	SetPos(x, y int)

	// Returns the smallest size the Component can be.
	GetMinSize() (w, h int)
	GetSize() (w, h int)
	SetSize(w, h int)

	// HandleEvent returns whether the Component handled the event.
	HandleEvent(tcell.Event) bool
}

var (
	_ Component = (*TextView)(nil)
	_ Component = (*StatusBar)(nil)
)

// baseComponent can be embedded in a Component's struct to hide a few of the
// boilerplate fields and functions.
type baseComponent struct {
	focused       bool
	x, y          int
	width, height int
	theme         *Theme
}

func (c *baseComponent) SetFocused(v bool) {
	c.focused = v
}

func (c *baseComponent) SetTheme(theme *Theme) {
	c.theme = theme
}

func (c *baseComponent) GetPos() (int, int) {
	return c.x, c.y
}

func (c *baseComponent) SetPos(x, y int) {
	c.x, c.y = x, y
}

func (c *baseComponent) GetMinSize() (int, int) {
	return 0, 0
}

func (c *baseComponent) GetSize() (int, int) {
	return c.width, c.height
}

func (c *baseComponent) SetSize(width, height int) {
	c.width, c.height = width, height
}
