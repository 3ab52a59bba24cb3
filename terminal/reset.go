package terminal

import (
	"io"
	"os"
)

// Reset sequences: show cursor, leave alternate screen, reset attributes
var resetSequence = []byte("\x1b[?25h\x1b[?1049l\x1b[0m\r\n")

// EmergencyReset restores a terminal left in raw mode when tcell could not finalize
func EmergencyReset(w io.Writer) {
	w.Write(resetSequence)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
