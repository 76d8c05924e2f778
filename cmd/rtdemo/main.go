// Command rtdemo runs a choice reaction time experiment: a fixation cross,
// then a target letter, then a timed key press.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hubastard/stimgrove/engine/config"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/gfx/headless"
	"github.com/hubastard/stimgrove/engine/logging"
	"github.com/hubastard/stimgrove/engine/profiler"
)

type App struct {
	cfg   config.Config
	trial *LayerTrial
	debug *LayerDebug

	// headless only
	responder *Responder
}

func (a *App) OnStart(e *core.Engine) {
	if a.cfg.Debug.Profile != "" {
		profiler.Init(1 << 14)
	}

	a.trial = NewLayerTrial(a.cfg.Experiment)
	e.Layers.Push(e, a.trial)

	a.debug = &LayerDebug{}
	e.Layers.Push(e, a.debug)

	if a.responder != nil {
		a.responder.trial = a.trial
		e.Layers.Push(e, a.responder)
	}
	e.Log.Exp(fmt.Sprintf("experiment start: %d trials", a.cfg.Experiment.Trials))
}

func (a *App) OnFrame(e *core.Engine)                {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if !profiler.Enabled() {
		return
	}
	profiler.WriteSummary(os.Stderr)
	if err := profiler.DumpSpeedscope(a.cfg.Debug.Profile); err != nil {
		e.Log.Error(err.Error())
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "experiment configuration (.yaml, .yml or .toml)")
		useHeadless = flag.Bool("headless", false, "run without a display, answering trials automatically")
		maxFrames   = flag.Int("frames", 0, "stop after this many frames (0 means no limit)")
		rate        = flag.Float64("rate", 60, "nominal refresh rate of the headless display")
		profile     = flag.String("profile", "", "write a speedscope profile to this file")
		statsview   = flag.String("statsview", "", "serve runtime statistics on this address")
		level       = flag.String("log", "", "log level (debug, info, exp, data, warning, error, critical)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	if *profile != "" {
		cfg.Debug.Profile = *profile
	}
	if *statsview != "" {
		cfg.Debug.StatsView = *statsview
	}
	if *level != "" {
		l, err := logging.ParseLevel(*level)
		if err != nil {
			return err
		}
		cfg.Log.Level = l
	}

	log := logging.New(0)
	log.SetLevel(cfg.Log.Level)
	if cfg.Log.Echo {
		log.SetEcho(os.Stderr)
	}
	if cfg.Log.Store != "" {
		session := cfg.Log.Session
		if session == "" {
			session = time.Now().Format(time.RFC3339)
		}
		store, err := logging.OpenStore(cfg.Log.Store, session)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
		log.SetStore(store)
	}
	cfg.Window.Logger = log

	if cfg.Debug.StatsView != "" {
		profiler.LaunchStatsView(cfg.Debug.StatsView, os.Stderr)
	}

	app := &App{cfg: cfg}
	newWindow, newRenderer, release := platformBackends()
	if *useHeadless {
		win := headless.NewWindow(cfg.Window, *maxFrames)
		app.responder = &Responder{win: win, keys: cfg.Experiment.ResponseKeys, delay: 0.25}
		newWindow = func(core.Config) (core.Window, error) { return win, nil }
		newRenderer = headless.Factory(*rate)
	}
	defer release()

	if err := core.Run(app, cfg.Window, newWindow, newRenderer); err != nil {
		log.Critical(err.Error())
		return err
	}
	return nil
}
