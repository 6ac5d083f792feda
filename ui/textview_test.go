package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	"github.com/fivemoreminix/glslmode/ui/buffer"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func newView(s tcell.Screen, contents string, w, h int) (*TextView, *buffer.Colorscheme) {
	cs := buffer.DefaultColorscheme()
	tv := NewTextView(s, "test.frag", []byte(contents), buffer.NewGLSL(nil), &cs, nil)
	tv.SetPos(0, 0)
	tv.SetSize(w, h)
	return tv, &cs
}

func cellAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _ := cellAt(s, x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestTextViewDraw(t *testing.T) {
	s := newSimScreen(t, 20, 4)
	tv, cs := newView(s, "vec4 c;\n// int\n", 20, 4)
	tv.Draw(s)
	s.Show()

	assert.Equal(t, " 1│vec4 c;", rowText(s, 0))
	assert.Equal(t, " 2│// int", rowText(s, 1))
	assert.Equal(t, " 3│", rowText(s, 2))
	assert.Equal(t, "  │", rowText(s, 3))

	_, style := cellAt(s, 3, 0)
	assert.Equal(t, cs.GetStyle(buffer.Type), style, "vec4 is a type")
	_, style = cellAt(s, 8, 0)
	assert.Equal(t, cs.GetStyle(buffer.Default), style, "c is not classified")
	_, style = cellAt(s, 1, 0)
	assert.Equal(t, cs.GetStyle(buffer.Column), style)

	_, style = cellAt(s, 7, 1)
	assert.NotEqual(t, cs.GetStyle(buffer.Type), style, "int inside a comment")
}

func TestTextViewDrawTabs(t *testing.T) {
	s := newSimScreen(t, 20, 1)
	tv, cs := newView(s, "\tint x;", 20, 1)
	tv.Draw(s)
	s.Show()

	assert.Equal(t, " 1│    int x;", rowText(s, 0))
	_, style := cellAt(s, 7, 0)
	assert.Equal(t, cs.GetStyle(buffer.Type), style)
}

func TestTextViewNoLineNumbers(t *testing.T) {
	s := newSimScreen(t, 10, 1)
	tv, _ := newView(s, "uniform", 10, 1)
	tv.LineNumbers = false
	tv.Draw(s)
	s.Show()

	assert.Equal(t, "uniform", rowText(s, 0))
}

func TestTextViewScroll(t *testing.T) {
	s := newSimScreen(t, 10, 3)
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "float"
	}
	tv, _ := newView(s, strings.Join(lines, "\n"), 10, 3)
	tv.SetFocused(true)

	tv.GotoLine(8)
	tv.Draw(s)
	s.Show()

	assert.Equal(t, " 6│float", rowText(s, 0))
	assert.Equal(t, " 8│float", rowText(s, 2))

	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)

	tv.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	x, _, _ = s.GetCursor()
	assert.Equal(t, 8, x)
	assert.Equal(t, "8:6", tv.Position())
}

func TestTextViewStatus(t *testing.T) {
	s := newSimScreen(t, 40, 2)
	tv, _ := newView(s, "float x = noise1(y);\n", 40, 2)

	var copied []string
	tv.CopyText = func(text string) error {
		copied = append(copied, text)
		return nil
	}

	msg, kind := tv.Status()
	assert.Equal(t, "float: type", msg)
	assert.Equal(t, StatusPlain, kind)

	tv.SetCursor(tv.GetCursor().SetLineCol(0, 12))
	msg, _ = tv.Status()
	assert.Equal(t, "noise1: deprecated-builtin", msg)

	require.True(t, tv.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl)))
	want := glsl.DefaultManBaseURL + "noise1.xhtml"
	assert.Equal(t, []string{want}, copied)
	msg, kind = tv.Status()
	assert.Equal(t, "copied "+want, msg)
	assert.Equal(t, StatusInfo, kind)

	// Moving the cursor drops the message.
	tv.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	msg, _ = tv.Status()
	assert.Equal(t, "noise1: deprecated-builtin", msg)

	tv.SetCursor(tv.GetCursor().SetLineCol(0, 6))
	msg, _ = tv.Status()
	assert.Equal(t, "x", msg, "unclassified word")

	tv.SetCursor(tv.GetCursor().SetLineCol(0, 8))
	msg, _ = tv.Status()
	assert.Empty(t, msg)
}

func TestTextViewCopyDocURL(t *testing.T) {
	s := newSimScreen(t, 40, 2)
	tv, _ := newView(s, "float x = texture(s, uv);", 40, 2)

	_, err := tv.CopyDocURL()
	assert.True(t, errors.Is(err, glsl.ErrNotBuiltin), "float is a type: %v", err)

	tv.SetCursor(tv.GetCursor().SetLineCol(0, 8))
	_, err = tv.CopyDocURL()
	assert.ErrorIs(t, err, ErrNoWord)

	tv.SetCursor(tv.GetCursor().SetLineCol(0, 14))
	url, err := tv.CopyDocURL()
	require.NoError(t, err, "CopyText is optional")
	assert.Equal(t, glsl.DefaultManBaseURL+"texture.xhtml", url)

	tv.CopyText = func(string) error { return errors.New("no clipboard") }
	require.True(t, tv.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl)))
	msg, kind := tv.Status()
	assert.Contains(t, msg, "no clipboard")
	assert.Equal(t, StatusError, kind)
}

func TestTextViewSetContents(t *testing.T) {
	s := newSimScreen(t, 20, 3)
	tv, _ := newView(s, "int a;\nint b;\nint c;\n", 20, 3)
	tv.SetCursor(tv.GetCursor().SetLineCol(2, 4))

	tv.SetContents([]byte("uint a;\n"))
	line, col := tv.GetCursor().GetLineCol()
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)

	tv.Draw(s)
	s.Show()
	assert.Equal(t, " 1│uint a;", rowText(s, 0))
	assert.Equal(t, " 2│", rowText(s, 1))
	assert.Equal(t, "  │", rowText(s, 2))
}

func TestTextViewIgnoresOtherEvents(t *testing.T) {
	s := newSimScreen(t, 20, 3)
	tv, _ := newView(s, "int a;", 20, 3)

	assert.False(t, tv.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, tv.HandleEvent(tcell.NewEventResize(10, 10)))
}

func TestStatusBarDraw(t *testing.T) {
	s := newSimScreen(t, 20, 1)
	b := NewStatusBar(nil)
	b.SetSize(20, 1)
	b.Message = "vec2: type"
	b.Right = "1:1"
	b.Draw(s)
	s.Show()

	assert.Equal(t, " vec2: type     1:1", rowText(s, 0))
	_, style := cellAt(s, 0, 0)
	assert.Equal(t, DefaultTheme["StatusBar"], style)

	b.Kind = StatusError
	b.Draw(s)
	s.Show()
	_, style = cellAt(s, 1, 0)
	assert.Equal(t, DefaultTheme["StatusBarError"], style)
}
