package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusKind picks the style of the status bar message.
type StatusKind uint8

const (
	StatusPlain StatusKind = iota
	StatusInfo
	StatusError
)

// A StatusBar is a single line with a message on the left and a position
// on the right.
type StatusBar struct {
	Message string
	Kind    StatusKind
	Right   string

	baseComponent
}

func NewStatusBar(theme *Theme) *StatusBar {
	b := &StatusBar{baseComponent: baseComponent{theme: theme}}
	b.SetSize(b.GetMinSize())
	return b
}

func (b *StatusBar) GetMinSize() (int, int) {
	return 0, 1
}

func (b *StatusBar) Draw(s tcell.Screen) {
	style := b.theme.GetOrDefault("StatusBar")
	DrawRect(s, b.x, b.y, b.width, 1, ' ', style)

	right := b.x + b.width
	if b.Right != "" {
		right = max(b.x, right-runewidth.StringWidth(b.Right)-1)
		DrawStr(s, right, b.y, b.x+b.width, b.Right, style)
	}

	msgStyle := style
	switch b.Kind {
	case StatusInfo:
		msgStyle = b.theme.GetOrDefault("StatusBarInfo")
	case StatusError:
		msgStyle = b.theme.GetOrDefault("StatusBarError")
	}
	DrawStr(s, b.x+1, b.y, right-1, b.Message, msgStyle)
}

func (b *StatusBar) HandleEvent(tcell.Event) bool {
	return false
}
