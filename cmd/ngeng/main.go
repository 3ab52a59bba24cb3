package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/ngeng/audio"
	"github.com/lixenwraith/ngeng/config"
	"github.com/lixenwraith/ngeng/game"
	"github.com/lixenwraith/ngeng/input"
	"github.com/lixenwraith/ngeng/parameter"
	"github.com/lixenwraith/ngeng/terminal"
)

type flags struct {
	configPath string
	profile    string
	fps        int
	mute       bool
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "ngeng",
		Short: "Terminal driving dashboard with gears, cruise and brake",
		Long: fmt.Sprintf("ngeng drives a stylized vehicle from the keyboard.\n\nProfiles: %v\nConfigurable actions: %v",
			parameter.ProfileNames(), input.ActionNames()),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("stdout is not a terminal")
			}
			return run(cmd.Context(), cfg, f.debug)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to a TOML config file")
	fl.StringVar(&f.profile, "profile", "", "tuning profile (overrides config file)")
	fl.IntVar(&f.fps, "fps", 0, fmt.Sprintf("target frame rate (default %d)", config.DefaultFPS))
	fl.BoolVar(&f.mute, "mute", false, "start with audio muted")
	fl.BoolVar(&f.debug, "debug", false, "write debug logs to "+logDir+"/"+logFileName)
	return cmd
}

// resolveConfig loads the optional file and layers flags on top; all failures are fatal
func resolveConfig(f flags) (config.Config, error) {
	var file *config.File
	if f.configPath != "" {
		var err error
		if file, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	return config.Resolve(file, config.Overrides{
		Profile: f.profile,
		FPS:     f.fps,
		Mute:    f.mute,
	})
}

func run(ctx context.Context, cfg config.Config, debugLog bool) error {
	logger := logrus.New()
	if logFile := setupLogging(logger, debugLog); logFile != nil {
		defer logFile.Close()
	}

	screen, err := terminal.New(terminal.DefaultTheme())
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	crash := func(r any) {
		screen.Fini()
		terminal.EmergencyReset(os.Stdout)
		// \r\n for raw mode in case Fini did not restore cooked mode
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mNGENG CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		logger.WithField("panic", r).Error("crashed")
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	var sound game.Sound
	if cfg.AudioEnabled {
		sm := audio.NewSoundManager(cfg.Volume, cfg.Muted)
		if err := sm.Initialize(); err != nil {
			logger.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	logger.WithFields(logrus.Fields{
		"profile": cfg.Profile,
		"gears":   cfg.Tuning.Gears.Count(),
		"fps":     cfg.FPS,
		"audio":   sound != nil,
	}).Info("starting")

	g, err := game.New(screen, game.Options{
		Tuning:       cfg.Tuning,
		Keys:         cfg.Keys,
		FPS:          cfg.FPS,
		Sound:        sound,
		Logger:       logger,
		CrashHandler: crash,
	})
	if err != nil {
		return err
	}

	err = g.Run(ctx)
	s := g.Model().Snapshot()
	logger.WithFields(logrus.Fields{
		"distance": s.Distance,
		"elapsed":  s.ElapsedTime,
	}).Info("shutdown")
	return err
}
