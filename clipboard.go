package main

import (
	"log/slog"

	"github.com/zyedidia/clipboard"
)

type ClipMethod uint8

const (
	ClipExternal ClipMethod = iota
	_
	ClipInternal
)

func (m ClipMethod) String() string {
	if m == ClipExternal {
		return "external"
	}
	return "internal"
}

// A Clipboard holds copied documentation URLs. It uses the system clipboard
// when one can be initialized and keeps the text in memory otherwise.
type Clipboard struct {
	Method   ClipMethod
	internal string
}

// NewClipboard will initialize the system clipboard first, and if that
// fails, the internal method is chosen instead. The failure is not fatal.
func NewClipboard() *Clipboard {
	if err := clipboard.Initialize(); err != nil {
		slog.Debug("System clipboard unavailable, using internal clipboard", slog.Any("error", err))
		return &Clipboard{Method: ClipInternal}
	}
	return &Clipboard{Method: ClipExternal}
}

// Read receives the clipboard contents using the chosen method.
func (c *Clipboard) Read() (string, error) {
	if c.Method == ClipExternal {
		return clipboard.ReadAll("clipboard")
	}
	return c.internal, nil
}

// Write sets the clipboard contents using the chosen method.
func (c *Clipboard) Write(content string) error {
	if c.Method == ClipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	c.internal = content
	return nil
}
