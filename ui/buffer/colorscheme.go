package buffer

import (
	"github.com/gdamore/tcell/v2"
)

type Colorscheme map[Syntax]tcell.Style

// Gets the tcell.Style from the Colorscheme map for the given Syntax.
// If the Syntax cannot be found in the map, either the `Default` Syntax
// is used, or `tcell.StyleDefault` is returned if the Default is not assigned.
func (c *Colorscheme) GetStyle(s Syntax) tcell.Style {
	if c != nil {
		if val, ok := (*c)[s]; ok {
			return val // Try to return the requested value
		} else if s != Default {
			if val, ok := (*c)[Default]; ok {
				return val // Use default colorscheme value, instead
			}
		}
	}

	return tcell.StyleDefault // No value for Default; use default style.
}

// DefaultColorscheme uses only the first 16 colors present in most terminals.
// Everything deprecated is drawn in red so it stands out.
func DefaultColorscheme() Colorscheme {
	base := tcell.Style{}.Background(tcell.ColorBlack)
	return Colorscheme{
		Default:            base.Foreground(tcell.ColorSilver),
		Column:             base.Foreground(tcell.ColorGray),
		Comment:            base.Foreground(tcell.ColorGray),
		String:             base.Foreground(tcell.ColorOlive),
		Number:             base.Foreground(tcell.ColorFuchsia),
		Keyword:            base.Foreground(tcell.ColorBlue).Bold(true),
		Qualifier:          base.Foreground(tcell.ColorBlue),
		ReservedKeyword:    base.Foreground(tcell.ColorBlue).Underline(true),
		Type:               base.Foreground(tcell.ColorPurple),
		Builtin:            base.Foreground(tcell.ColorAqua),
		Preprocessor:       base.Foreground(tcell.ColorTeal).Bold(true),
		Variable:           base.Foreground(tcell.ColorYellow),
		Extension:          base.Foreground(tcell.ColorTeal),
		DeprecatedKeyword:  base.Foreground(tcell.ColorRed),
		DeprecatedBuiltin:  base.Foreground(tcell.ColorRed).Italic(true),
		DeprecatedVariable: base.Foreground(tcell.ColorMaroon),
	}
}
