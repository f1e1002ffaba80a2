package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/locomotion/internal/application/game"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene/playing"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/logger"
)

const windowTitle = "Locomotion"

func main() {
	configDir := flag.String("config", "", "Config directory containing game.json or game.yaml (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "With -replay, simulate without a window and print the result")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (default: from config)")
	logFormat := flag.String("log-format", "", "Log format: console, text, json (default: from config)")
	flag.Parse()

	cfg, source, err := loadConfig(*configDir)
	if err != nil {
		logger.L().Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logCfg := logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if *logLevel != "" {
		logCfg.Level = *logLevel
	}
	if *logFormat != "" {
		logCfg.Format = *logFormat
	}
	logger.Init(logCfg)
	logger.L().Info("config loaded", "source", source, "mode", cfg.Player.MoveMode, "tps", cfg.Display.Framerate)

	if *headless {
		if *replayFlag == "" {
			logger.L().Error("-headless requires -replay")
			os.Exit(2)
		}
		if err := runHeadless(cfg, *replayFlag, os.Stdout); err != nil {
			logger.L().Error("headless replay failed", "err", err)
			os.Exit(1)
		}
		return
	}

	opts := playing.Options{RecordPath: *recordFlag}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			logger.L().Error("failed to load replay", "file", *replayFlag, "err", err)
			os.Exit(1)
		}
		opts.Replay = data
	}

	g := game.New(playing.New(cfg, opts), cfg.Display)
	game.Configure(cfg.Display, windowTitle)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		logger.L().Error("game exited with error", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration from dir, or from the embedded configs when
// dir is empty. It also returns where the configuration came from.
func loadConfig(dir string) (*config.GameConfig, string, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "embedded:configs")
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, "", err
	}
	return cfg, loader.BasePath(), nil
}

// runHeadless simulates a recorded replay and writes the final state to w.
func runHeadless(cfg *config.GameConfig, path string, w io.Writer) error {
	start := time.Now()
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	res, err := replay.Simulate(cfg, *data)
	if err != nil {
		return err
	}
	logger.L().Info("replay finished", "frames", res.Frames, logger.Since(start))

	p := res.Position
	_, err = fmt.Fprintf(w, "frames=%d position=(%.4f, %.4f, %.4f) grounded=%t\n",
		res.Frames, p.X(), p.Y(), p.Z(), res.Grounded)
	return err
}
