package dashboard

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MinHeight is the row count of the fixed layout
const MinHeight = 5

// barMargin is the column gap left right of the progress bar
const barMargin = 5

// grouped formats numbers with thousands separators
var grouped = message.NewPrinter(language.English)

// SummaryLine is the centered progress/speed/time readout
func (v View) SummaryLine() string {
	return fmt.Sprintf("%.2f%% ", v.Progress) +
		grouped.Sprintf("[%.2fkm] | %.2fkm/h @ %s", v.Distance, v.Speed, v.Elapsed)
}

// GearLine is the gear readout with ceiling and power band multiplier
func (v View) GearLine() string {
	return fmt.Sprintf("[Gear: %s] | [q/e] ", v.GearName) +
		grouped.Sprintf("[Max SPD: %.2fkm/h]", v.MaxSpeed) +
		fmt.Sprintf(" (%.4f%%)", v.Multiplier*100)
}

// CruiseLine shows cruise hold state
func (v View) CruiseLine() string {
	if v.Cruise {
		return "[CRUISE]        | [tab]"
	}
	return "[      ]        | [tab]"
}

// BrakeLine shows brake state
func (v View) BrakeLine() string {
	if v.Brake {
		return "[BRAKE]         | [s]"
	}
	return "[     ]         | [s]"
}

// center pads text to width with the extra column on the right
func center(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}

// glyphColumn places the trend glyph just right of the centered summary
func glyphColumn(width, summaryWidth int) int {
	return width/2 + summaryWidth/2 + 2
}

// minWidth is the narrowest terminal the current lines fit in
func (v View) minWidth() int {
	summary := runewidth.StringWidth(v.SummaryLine())

	need := barMargin + 1
	for _, line := range []string{v.GearLine(), v.CruiseLine(), v.BrakeLine()} {
		need = max(need, runewidth.StringWidth(line))
	}
	need = max(need, summary)

	// Smallest w with glyphColumn(w) <= w-1
	need = max(need, 2*(summary/2+3)-1)
	return need
}
