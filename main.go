package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"torus-snake/audio"
	"torus-snake/config"
	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML or JSON config file")
	backend := flag.String("backend", "", "Display backend: raylib or terminal")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = seed from clock)")
	mute := flag.Bool("mute", false, "Disable the eat chime")
	logPath := flag.String("log", "", "Write logs to this file (\"-\" for stderr)")
	flag.Parse()

	cfg, err := config.NewLoader().Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *backend != "" {
		cfg.Display.Backend = config.Backend(*backend)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *mute {
		cfg.Audio.Mute = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("starting: backend=%s grid=%d fps=%d tick_divisor=%d seed=%d",
		cfg.Display.Backend, cfg.Game.GridSize, cfg.Display.FPS, cfg.Game.TickDivisor, cfg.Game.Seed)

	g := game.New(game.Options{
		Grid:        types.NewSquareGrid(cfg.Game.GridSize),
		TickDivisor: cfg.Game.TickDivisor,
		Rand:        rand.New(rand.NewSource(cfg.Game.Seed)),
	})

	b, renderer, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("display: %v", err)
	}
	defer b.Close()

	chime := audio.NewChime(cfg.Audio.Frequency, time.Duration(cfg.Audio.DurationMS)*time.Millisecond)
	if !cfg.Audio.Mute {
		if err := chime.Init(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Printf("audio initialization failed: %v", err)
		}
	}
	defer chime.Close()

	run(b, g, renderer, chime, logger)
}

// openBackend creates the display selected in cfg together with a renderer
// sized for it.
func openBackend(cfg *config.Config) (ui.Backend, *ui.Renderer, error) {
	background, head, body, food := cfg.Palette.Colors()
	palette := ui.Palette{Background: background, Head: head, Body: body, Food: food}

	switch cfg.Display.Backend {
	case config.BackendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create terminal screen: %w", err)
		}
		b, err := ui.NewTerminalBackend(screen, cfg.Display.FPS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize terminal: %w", err)
		}
		return b, ui.NewRenderer(ui.TerminalCellWidth, 1, palette), nil
	default:
		size := cfg.Game.GridSize * cfg.Display.TileSize
		b, err := ui.NewRaylibBackend(size, size, cfg.Display.Title, cfg.Display.FPS)
		if err != nil {
			return nil, nil, err
		}
		tile := cfg.Display.TileSize
		return b, ui.NewRenderer(tile, tile, palette), nil
	}
}

// newLogger returns a logger tagged with a per-run session id. An empty
// path discards output so the game stays silent by default.
func newLogger(path string) (*log.Logger, func(), error) {
	prefix := fmt.Sprintf("[snake %s] ", uuid.NewString()[:8])
	flags := log.LstdFlags | log.Lmsgprefix

	switch path {
	case "":
		return log.New(io.Discard, prefix, flags), func() {}, nil
	case "-":
		return log.New(os.Stderr, prefix, flags), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return log.New(f, prefix, flags), func() { f.Close() }, nil
}
