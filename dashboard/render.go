package dashboard

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style is a logical paint style; the host maps it to terminal attributes
type Style uint8

const (
	StyleNormal Style = iota
	StyleSpeedUp
	StyleSpeedDown
	StyleDownshift
	StyleStatus
	StyleError
)

// Painter is the host render surface
type Painter interface {
	Size() (width, height int)
	PaintText(row, col int, text string, style Style)
	PaintBar(row, col, width int, current, max float64)
}

// Status carries host-level flags shown on the status row
type Status struct {
	Paused bool
	Muted  bool
}

const helpLine = " [w/↑] thrust  [s/↓] brake  [q/e] shift  [tab] cruise  [p] pause  [m] mute  [esc] quit"

// Render paints the fixed layout, or returns *TerminalTooSmallError without painting
func Render(p Painter, v View, status Status) error {
	width, height := p.Size()
	minWidth := v.minWidth()
	if width < minWidth || height < MinHeight {
		return &TerminalTooSmallError{Width: width, Height: height, MinWidth: minWidth, MinHeight: MinHeight}
	}

	summary := v.SummaryLine()

	p.PaintBar(0, 0, width-barMargin, v.BarCurrent, v.BarMax)
	p.PaintText(1, 0, center(summary, width), StyleNormal)
	p.PaintText(1, glyphColumn(width, runewidth.StringWidth(summary)), v.Direction.Glyph(), v.Direction.Style())

	gearStyle := StyleNormal
	if v.Downshifting {
		gearStyle = StyleDownshift
	}
	p.PaintText(2, 0, v.GearLine(), gearStyle)
	p.PaintText(3, 0, v.CruiseLine(), StyleNormal)
	p.PaintText(4, 0, v.BrakeLine(), StyleNormal)

	if height > MinHeight {
		p.PaintText(height-1, 0, statusLine(status, width), StyleStatus)
	}
	return nil
}

// RenderFailure paints err word-wrapped from the top-left, dropping what does not fit
func RenderFailure(p Painter, err error) {
	width, height := p.Size()
	if width <= 0 || height <= 0 {
		return
	}
	for row, line := range wrap(err.Error(), width) {
		if row >= height {
			break
		}
		p.PaintText(row, 0, line, StyleError)
	}
}

func statusLine(status Status, width int) string {
	var b strings.Builder
	if status.Paused {
		b.WriteString(" PAUSED")
	}
	if status.Muted {
		b.WriteString(" MUTED")
	}
	if b.Len() > 0 {
		b.WriteString(" |")
	}
	b.WriteString(helpLine)
	return runewidth.FillRight(runewidth.Truncate(b.String(), width, ""), width)
}

func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		for runewidth.StringWidth(word) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case runewidth.StringWidth(cur.String())+1+runewidth.StringWidth(word) <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
