package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ngeng/dashboard"
)

func newSimScreen(t *testing.T, width, height int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := Wrap(sim, DefaultTheme())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(width, height)
	s.Clear()
	t.Cleanup(s.Fini)
	return s, sim
}

func rowText(sim tcell.SimulationScreen, row, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := sim.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestPaintTextClipsAtEdge(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	s.PaintText(1, 6, "abcdef", dashboard.StyleNormal)
	s.Show()

	if got := rowText(sim, 1, 10); got != "      abcd" {
		t.Errorf("Expected clipped text, got %q", got)
	}
}

func TestPaintTextIgnoresOffscreenRows(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	s.PaintText(5, 0, "zzz", dashboard.StyleNormal)
	s.PaintText(-1, 0, "zzz", dashboard.StyleNormal)
	s.Show()

	for row := 0; row < 3; row++ {
		if strings.Contains(rowText(sim, row, 10), "z") {
			t.Errorf("Unexpected paint on row %d", row)
		}
	}
}

func TestPaintTextAppliesTheme(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	s.PaintText(0, 0, "↑", dashboard.StyleSpeedUp)
	s.Show()

	r, _, style, _ := sim.GetContent(0, 0)
	if r != '↑' {
		t.Fatalf("Expected arrow glyph, got %q", r)
	}
	if style != DefaultTheme().Resolve(dashboard.StyleSpeedUp) {
		t.Error("Expected speed-up style from theme")
	}
}

func TestPaintBar(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		max      float64
		expected string
	}{
		{"empty", 0, 36, "░░░░░░░░░░"},
		{"half", 18, 36, "█████░░░░░"},
		{"rounded half cell", 20, 36, "█████▌░░░░"},
		{"full", 36, 36, "██████████"},
		{"over", 50, 36, "██████████"},
		{"zero max", 5, 0, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sim := newSimScreen(t, 12, 2)
			s.PaintBar(0, 0, 10, tt.current, tt.max)
			s.Show()

			got := []rune(rowText(sim, 0, 12))
			if string(got[:10]) != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, string(got[:10]))
			}
		})
	}
}

func TestScreenHostsDashboard(t *testing.T) {
	s, sim := newSimScreen(t, 80, 8)

	v := dashboard.View{GearName: "Gear #1", Elapsed: "00:00:00", BarMax: 36}
	if err := dashboard.Render(s, v, dashboard.Status{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	s.Show()

	if got := rowText(sim, 2, 80); !strings.HasPrefix(got, "[Gear: Gear #1]") {
		t.Errorf("Expected gear line on row 2, got %q", got)
	}
	if got := rowText(sim, 4, 80); !strings.HasPrefix(got, "[     ]") {
		t.Errorf("Expected brake line on row 4, got %q", got)
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	if !bytes.Contains(buf.Bytes(), []byte("\x1b[?25h")) {
		t.Error("Expected cursor show sequence")
	}
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[?1049l")) {
		t.Error("Expected alternate screen exit sequence")
	}
}
