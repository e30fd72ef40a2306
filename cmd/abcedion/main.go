package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/abcedion/audio"
	"github.com/lixenwraith/abcedion/config"
	"github.com/lixenwraith/abcedion/core"
	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/input"
	"github.com/lixenwraith/abcedion/invite"
	"github.com/lixenwraith/abcedion/locale"
	"github.com/lixenwraith/abcedion/logo"
	"github.com/lixenwraith/abcedion/modes"
	"github.com/lixenwraith/abcedion/persist"
	"github.com/lixenwraith/abcedion/render"
	"github.com/lixenwraith/abcedion/status"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "abcedion: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	path, required := flags.configPath()
	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	if err := flags.apply(cfg); err != nil {
		return err
	}

	if cfg.LogPath != core.DisabledLogPath {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	logger, err := core.NewLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	keys := input.DefaultKeyTable()
	if cfg.Keymap != "" {
		data, err := os.ReadFile(cfg.Keymap)
		if err != nil {
			return fmt.Errorf("read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keys = input.MergeKeyTable(keys, override)
	}

	tp := engine.NewMonotonicTimeProvider()
	store := persist.NewStore(cfg.SavePath)
	fresh := !store.Exists()
	state, err := store.Load(tp.Now())
	if err != nil {
		// A corrupt save must not be overwritten silently
		return fmt.Errorf("%w (move %s aside to start over)", err, store.Path())
	}
	switch {
	case flags.Language != "":
		state.Language = locale.Language(flags.Language)
	case fresh && cfg.Language != "":
		state.Language = locale.Language(cfg.Language)
	}

	sched, err := engine.ParseResetSchedule(cfg.TaskResetSchedule)
	if err != nil {
		return err
	}

	stats := status.NewRegistry()
	sound := audio.NewSoundManager(cfg.AudioConfig(), logger, stats)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(flags.Mute)

	game := engine.New(state, engine.Options{
		Time:          tp,
		Persister:     store,
		Logger:        logger,
		Status:        stats,
		ResetSchedule: sched,
		OnCue:         sound.HandleCue,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetScreen(screen)
	defer func() {
		core.SetScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.LogoEnabled() {
		startLogo(ctx, cfg, store.Dir(), state.CustomObsidianIcon, game, logger)
	}

	scheduler := engine.NewClockScheduler(game, tp, time.Duration(cfg.TickMs)*time.Millisecond)
	scheduler.Start()

	handler := modes.NewInputHandler(game, modes.Options{
		Keys:          keys,
		Sound:         sound,
		Clipboard:     invite.SystemClipboard{},
		InviteBaseURL: cfg.InviteBaseURL,
		Status:        stats,
		Logger:        logger,
		Screen:        screen,
	})
	renderer := render.NewRenderer(screen, cfg.Color == config.ColorMono)

	logger.Info("started",
		zap.String("save", store.Path()),
		zap.Bool("fresh", fresh),
		zap.String("language", string(state.Language)),
	)

	loop(screen, game, handler, renderer, time.Duration(cfg.FrameMs)*time.Millisecond)

	// Shutdown: stop producers, drop in-flight flows, write the final state
	scheduler.Stop()
	game.Close()
	if err := store.Save(game.Snapshot().State); err != nil {
		logger.Error("final save failed", zap.Error(err))
	}
	logger.Info("stopped", zap.Uint64("ticks", scheduler.TickCount()))
	return nil
}

// loop polls input and redraws until the handler asks to quit
func loop(screen tcell.Screen, game *engine.Game, handler *modes.InputHandler, renderer *render.Renderer, frame time.Duration) {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	draw := func() {
		snap := game.Snapshot()
		hits := renderer.Draw(snap, handler.Frame())
		handler.Update(snap, hits)
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	draw()
	for {
		select {
		case ev := <-events:
			if !handler.HandleEvent(ev) {
				return
			}
			draw()
		case <-ticker.C:
			draw()
		}
	}
}

// startLogo requests a generated logo in the background and stores its path
func startLogo(ctx context.Context, cfg *config.Config, dir, current string, game *engine.Game, logger *zap.Logger) {
	log := logger.Named("logo")
	core.Go(func() {
		gen, err := logo.NewGeminiGenerator(ctx, cfg.Logo.APIKey, cfg.Logo.Model)
		if err != nil {
			log.Warn("logo client unavailable", zap.Error(err))
			return
		}
		if path := logo.Ensure(ctx, gen, dir, current, log); path != "" {
			game.SetCustomIcon(path)
		}
	})
}
