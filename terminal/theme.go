package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ngeng/dashboard"
)

// Theme maps logical dashboard styles to tcell styles
type Theme struct {
	Styles   map[dashboard.Style]tcell.Style
	BarFill  tcell.Style
	BarEmpty tcell.Style
}

// DefaultTheme uses the terminal's default colors with red/green accents
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Styles: map[dashboard.Style]tcell.Style{
			dashboard.StyleNormal:    base,
			dashboard.StyleSpeedUp:   base.Foreground(tcell.ColorGreen),
			dashboard.StyleSpeedDown: base.Foreground(tcell.ColorRed),
			dashboard.StyleDownshift: base.Foreground(tcell.ColorRed),
			dashboard.StyleStatus:    base.Reverse(true),
			dashboard.StyleError:     base.Foreground(tcell.ColorRed).Bold(true),
		},
		BarFill:  base,
		BarEmpty: base.Dim(true),
	}
}

// Resolve returns the tcell style for s, falling back to the default style
func (t Theme) Resolve(s dashboard.Style) tcell.Style {
	if st, ok := t.Styles[s]; ok {
		return st
	}
	return tcell.StyleDefault
}
