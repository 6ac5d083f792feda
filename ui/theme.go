package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// A Theme is a map of string names to styles for the parts of the viewer
// that are not source text. Source text is styled by a buffer.Colorscheme.
// If a theme value cannot be found, the DefaultTheme value is used instead.
type Theme map[string]tcell.Style

func (theme *Theme) GetOrDefault(key string) tcell.Style {
	if theme != nil {
		if val, ok := (*theme)[key]; ok {
			return val
		}
	}

	if val, ok := DefaultTheme[key]; ok {
		return val
	} else {
		panic(fmt.Sprintf("key \"%v\" not present in default theme", key))
	}
}

// DefaultTheme uses only the first 16 colors present in most colored terminals.
var DefaultTheme = Theme{
	"Normal":         tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"StatusBar":      tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"StatusBarInfo":  tcell.Style{}.Foreground(tcell.ColorNavy).Background(tcell.ColorSilver),
	"StatusBarError": tcell.Style{}.Foreground(tcell.ColorMaroon).Background(tcell.ColorSilver),
}
