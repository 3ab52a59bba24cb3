package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ngeng/dashboard"
)

// Screen is the tcell-backed render surface and event source
type Screen struct {
	screen tcell.Screen
	theme  Theme
}

// New allocates a screen for the controlling terminal; call Init before use
func New(theme Theme) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Wrap(s, theme), nil
}

// Wrap uses an existing tcell screen, e.g. a simulation screen in tests
func Wrap(s tcell.Screen, theme Theme) *Screen {
	return &Screen{screen: s, theme: theme}
}

// Init enters raw mode and the alternate screen
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// PollEvent blocks for the next event; nil once the screen is finalized
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Size returns terminal columns and rows
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Clear blanks the back buffer
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the back buffer to the terminal
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync repaints everything, used after resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PaintText writes text at row/col, clipping at the right edge
func (s *Screen) PaintText(row, col int, text string, style dashboard.Style) {
	width, height := s.screen.Size()
	if row < 0 || row >= height {
		return
	}
	st := s.theme.Resolve(style)
	x := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, row, r, nil, st)
		}
		x += w
	}
}

// PaintBar draws a horizontal bar filled to current/max
func (s *Screen) PaintBar(row, col, width int, current, max float64) {
	sw, sh := s.screen.Size()
	if row < 0 || row >= sh {
		return
	}
	var pct float64
	if max > 0 {
		pct = current / max
	}
	for i, ch := range barCells(width, pct) {
		x := col + i
		if x >= sw {
			break
		}
		st := s.theme.BarFill
		if ch == progressEmpty {
			st = s.theme.BarEmpty
		}
		s.screen.SetContent(x, row, ch, nil, st)
	}
}
