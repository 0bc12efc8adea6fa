package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/balloon/asset"
	"github.com/lixenwraith/balloon/audio"
	"github.com/lixenwraith/balloon/config"
	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/game"
	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/render"
	"github.com/lixenwraith/balloon/window"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml)")
	logoFlag   = flag.String("logo", "", "Ball image, overrides the config")
	debugFlag  = flag.Bool("debug", false, "Write debug logs")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "balloon-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *logoFlag != "" {
		cfg.Asset.Logo = *logoFlag
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
	}

	// Window host keeps stderr, the log file is optional
	if *debugFlag {
		logFile, err := core.OpenLogFile(cfg.Log.Dir, true)
		if err != nil {
			return err
		}
		defer logFile.Close()
	}
	core.SetLogLevel(cfg.Log.Level)

	palette, err := cfg.RenderPalette()
	if err != nil {
		return err
	}

	var listener game.Listener = game.NopListener{}
	if cfg.Audio.Enabled && !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			core.LogWarn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer sm.Cleanup()
			listener = sm
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logo := asset.NewLogo(cfg.Asset.Logo, int(2*parameter.BallRadius))
	logo.Load()
	if cfg.Asset.Watch {
		core.Go(func() {
			if err := logo.Watch(ctx); err != nil {
				core.LogWarn("logo watch stopped", "err", err)
			}
		})
	}

	g := game.New(game.WithListener(listener))
	app := window.NewApp(g, render.NewDispatcher(palette, logo))

	core.LogInfo("window starting", "round", g.Session().Round, "interval", cfg.FrameInterval())
	if err := app.Run(cfg.FrameInterval()); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
