package dashboard

import "fmt"

// TerminalTooSmallError reports a terminal that cannot hold the fixed layout
type TerminalTooSmallError struct {
	Width, Height       int
	MinWidth, MinHeight int
}

func (e *TerminalTooSmallError) Error() string {
	return fmt.Sprintf("terminal too small: %dx%d (width x height), layout needs at least %dx%d",
		e.Width, e.Height, e.MinWidth, e.MinHeight)
}
