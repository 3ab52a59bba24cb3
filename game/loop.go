package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

const eventBuffer = 64

// Run drives the frame loop until quit, ctx cancellation, or the screen closing
// The caller owns the screen and finalizes it after Run returns, which stops the poller
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	go g.poll(events, done)

	ticker := time.NewTicker(g.frameInterval)
	defer ticker.Stop()

	g.log.WithField("interval", g.frameInterval).Debug("frame loop started")
	g.Frame()

	for {
		select {
		case <-ctx.Done():
			g.log.Debug("frame loop cancelled")
			return nil

		case ev, ok := <-events:
			if !ok {
				g.log.Debug("event source closed")
				return nil
			}
			if !g.HandleEvent(ev) {
				g.log.Debug("quit requested")
				return nil
			}

		case <-ticker.C:
			g.Frame()
		}
	}
}

// poll forwards screen events until the screen is finalized or Run exits
func (g *Game) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			if g.crash != nil {
				g.crash(r)
				return
			}
			panic(r)
		}
	}()
	defer close(events)

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
