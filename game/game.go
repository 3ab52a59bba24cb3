package game

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ngeng/audio"
	"github.com/lixenwraith/ngeng/dashboard"
	"github.com/lixenwraith/ngeng/engine"
	"github.com/lixenwraith/ngeng/input"
	"github.com/lixenwraith/ngeng/parameter"
	"github.com/lixenwraith/ngeng/vehicle"
)

// Screen is the host surface the loop paints to and polls events from
type Screen interface {
	dashboard.Painter
	PollEvent() tcell.Event
	Clear()
	Show()
	Sync()
}

// Sound receives audio feedback; nil disables it
type Sound interface {
	Play(c audio.Cue)
	SetEngineLoad(load float64)
	SetMuted(muted bool)
	Muted() bool
}

// Options configures a Game
type Options struct {
	Tuning parameter.Tuning
	Keys   *input.KeyTable
	FPS    int

	// Clock is the monotonic source; defaults to the system monotonic clock
	Clock  engine.TimeProvider
	Sound  Sound
	Logger logrus.FieldLogger

	// CrashHandler is called with the recovered value if the event poller panics
	CrashHandler func(any)
}

// Game is the explicit simulation context passed through the frame loop
type Game struct {
	screen   Screen
	model    *vehicle.Model
	clock    *engine.PausableClock
	sound    Sound
	log      logrus.FieldLogger
	keys     *input.KeyTable
	dispatch map[input.Intent]func()
	crash    func(any)

	frameInterval time.Duration

	started   bool
	lastFrame time.Time
	prevSpeed float64
	overSpeed bool
	quit      bool

	// Last size reported as too small, zero when the layout fits
	tooSmallW, tooSmallH int
}

// New validates options and builds the simulation context
func New(screen Screen, opts Options) (*Game, error) {
	if screen == nil {
		return nil, errors.New("game: nil screen")
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("game: fps must be positive, got %d", opts.FPS)
	}
	source := opts.Clock
	if source == nil {
		source = engine.NewMonotonicTimeProvider()
	}
	clock := engine.NewPausableClock(source)

	model, err := vehicle.NewModel(opts.Tuning, clock)
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:        screen,
		model:         model,
		clock:         clock,
		sound:         opts.Sound,
		log:           opts.Logger,
		keys:          opts.Keys,
		crash:         opts.CrashHandler,
		frameInterval: time.Second / time.Duration(opts.FPS),
	}
	if g.sound == nil {
		g.sound = silent{}
	}
	if g.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		g.log = l
	}
	if g.keys == nil {
		g.keys = input.DefaultKeyTable()
	}
	g.dispatch = g.buildDispatch()
	return g, nil
}

// Model exposes the vehicle model for inspection
func (g *Game) Model() *vehicle.Model {
	return g.model
}

// Paused reports whether the simulation clock is frozen
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

// buildDispatch maps every intent to its handler once at startup
func (g *Game) buildDispatch() map[input.Intent]func() {
	return map[input.Intent]func(){
		input.IntentForward: func() {
			if g.clock.IsPaused() {
				return
			}
			g.model.SetForward(g.clock.Now())
		},
		input.IntentBrake: func() {
			if g.clock.IsPaused() {
				return
			}
			g.model.SetBrake(g.clock.Now())
		},
		input.IntentShiftUp: func() {
			if g.clock.IsPaused() {
				return
			}
			g.model.ShiftUp()
			g.afterShift()
		},
		input.IntentShiftDown: func() {
			if g.clock.IsPaused() {
				return
			}
			g.model.ShiftDown()
			g.afterShift()
		},
		input.IntentToggleCruise: func() {
			if g.clock.IsPaused() {
				return
			}
			on := g.model.ToggleCruise()
			s := g.model.Snapshot()
			g.log.WithFields(logrus.Fields{"active": on, "target": s.CruiseSpeed}).Debug("cruise toggled")
			if on {
				g.sound.Play(audio.CueCruise)
			}
		},
		input.IntentPause: func() {
			paused := g.clock.Toggle()
			if paused {
				g.log.Info("paused")
			} else {
				g.log.WithField("paused_total", g.clock.TotalPauseDuration()).Info("resumed")
			}
		},
		input.IntentToggleMute: func() {
			muted := !g.sound.Muted()
			g.sound.SetMuted(muted)
			g.log.WithField("muted", muted).Info("mute toggled")
		},
		input.IntentQuit: func() {
			g.quit = true
		},
	}
}

func (g *Game) afterShift() {
	s := g.model.Snapshot()
	g.log.WithFields(logrus.Fields{
		"from":  s.LastGear,
		"to":    s.Gear,
		"speed": s.Speed,
	}).Debug("gear shift")
	g.sound.Play(audio.CueShift)
}

// HandleEvent applies one terminal event; returns false when the loop should exit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if handler, ok := g.dispatch[g.keys.Resolve(ev)]; ok {
			handler()
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return !g.quit
}

// Frame advances the model by the measured delta and repaints
func (g *Game) Frame() {
	now := g.clock.Now()
	var dt float64
	if g.started {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.started = true
	g.lastFrame = now

	if !g.clock.IsPaused() {
		g.model.Advance(dt)
	}
	state := g.model.Snapshot()
	tuning := g.model.Tuning()

	g.updateAudio(state)

	view := dashboard.Project(g.prevSpeed, state, tuning, g.model.AccelerationMultiplier(state.Speed, state.Gear))
	g.prevSpeed = state.Speed

	g.screen.Clear()
	status := dashboard.Status{Paused: g.clock.IsPaused(), Muted: g.sound.Muted()}
	if err := dashboard.Render(g.screen, view, status); err != nil {
		g.reportRenderError(err)
		g.screen.Clear()
		dashboard.RenderFailure(g.screen, err)
	} else if g.tooSmallW != 0 || g.tooSmallH != 0 {
		w, h := g.screen.Size()
		g.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("terminal size ok")
		g.tooSmallW, g.tooSmallH = 0, 0
	}
	g.screen.Show()
}

// reportRenderError logs each distinct too-small size once
func (g *Game) reportRenderError(err error) {
	var tooSmall *dashboard.TerminalTooSmallError
	if !errors.As(err, &tooSmall) {
		g.log.WithError(err).Error("render failed")
		return
	}
	if tooSmall.Width == g.tooSmallW && tooSmall.Height == g.tooSmallH {
		return
	}
	g.tooSmallW, g.tooSmallH = tooSmall.Width, tooSmall.Height
	g.log.WithFields(logrus.Fields{
		"width":      tooSmall.Width,
		"height":     tooSmall.Height,
		"min_width":  tooSmall.MinWidth,
		"min_height": tooSmall.MinHeight,
	}).Warn("terminal too small")
}

func (g *Game) updateAudio(state vehicle.State) {
	if state.OverSpeed && !g.overSpeed {
		g.log.WithFields(logrus.Fields{
			"gear":         state.Gear,
			"speed":        state.Speed,
			"downshifting": state.Downshifting,
		}).Debug("over speed")
		g.sound.Play(audio.CueOverSpeed)
	}
	g.overSpeed = state.OverSpeed

	g.sound.SetEngineLoad(engineLoad(state.Speed, g.model.CurrentGear()))
}

// engineLoad is speed as a fraction of the gear ceiling, 0 in neutral
func engineLoad(speed float64, gear parameter.Gear) float64 {
	if gear.MaxSpeed <= 0 {
		return 0
	}
	return math.Min(math.Max(speed/gear.MaxSpeed, 0), 1)
}

type silent struct{}

func (silent) Play(audio.Cue)        {}
func (silent) SetEngineLoad(float64) {}
func (silent) SetMuted(bool)         {}
func (silent) Muted() bool           { return false }

