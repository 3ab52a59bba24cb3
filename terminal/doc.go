// Package terminal hosts the dashboard on a tcell screen.
//
// Screen implements dashboard.Painter: logical styles are resolved through a
// Theme, text is clipped at the right edge, and bars are drawn with full/half/empty
// block glyphs. EmergencyReset restores a terminal left in raw mode by a crash.
package terminal
