package terminal

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// barCells returns the glyph for each of width cells at fill fraction pct
func barCells(width int, pct float64) []rune {
	if width <= 0 {
		return nil
	}
	if pct < 0 || pct != pct {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(width) * pct)
	remainder := float64(width)*pct - float64(filled)

	cells := make([]rune, width)
	for i := range cells {
		switch {
		case i < filled:
			cells[i] = progressFull
		case i == filled && remainder >= 0.5:
			cells[i] = progressHalf
		default:
			cells[i] = progressEmpty
		}
	}
	return cells
}
