package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/balloon/asset"
	"github.com/lixenwraith/balloon/audio"
	"github.com/lixenwraith/balloon/config"
	"github.com/lixenwraith/balloon/core"
	"github.com/lixenwraith/balloon/engine"
	"github.com/lixenwraith/balloon/game"
	"github.com/lixenwraith/balloon/parameter"
	"github.com/lixenwraith/balloon/render"
	"github.com/lixenwraith/balloon/terminal"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml)")
	logoFlag   = flag.String("logo", "", "Ball image, overrides the config")
	debugFlag  = flag.Bool("debug", false, "Write debug logs")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: the crash handler resets the screen once it is registered
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "balloon: %v\n", err)
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
	if *colorFlag != "" {
		cfg.Display.ColorMode = *colorFlag
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
	}

	// The screen owns stdout, logs go to file
	logFile, err := core.OpenLogFile(cfg.Log.Dir, true)
	if err != nil {
		return err
	}
	defer logFile.Close()
	core.SetLogLevel(cfg.Log.Level)

	palette, err := cfg.RenderPalette()
	if err != nil {
		return err
	}

	colorMode := terminal.ParseColorMode(cfg.Display.ColorMode)
	screen, err := terminal.Open(colorMode)
	if err != nil {
		return err
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()
	core.LogInfo("screen ready", "color", colorMode, "version", buildVersion())

	// Audio is optional
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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
	surface := terminal.NewSurface(screen)

	var host *engine.Host
	input := terminal.NewInput(g.Push, surface,
		terminal.WithQuit(func() { host.Quit() }),
		terminal.WithResize(surface.Sync),
	)
	host = engine.NewHost(g, render.NewDispatcher(palette, logo), surface,
		engine.WithRedraw(logo.Ready()),
		engine.WithFrameHook(input.Expire),
	)

	core.Go(func() { input.Poll(screen) })

	clock := engine.NewTickerClock(cfg.FrameInterval())
	return host.Run(ctx, clock)
}

// buildVersion reports the main module version stamped by the go tool
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "unknown"
}
