package main

import (
	"flag"
	"log/slog"
	"os"

	"LineEditor/internal/config"
	"LineEditor/internal/editor"
	"LineEditor/internal/ui"
)

func main() {
	configPath := flag.String("config", "lineeditor.toml", "path to the TOML settings file")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "err", err)
		os.Exit(1)
	}

	// Load validated the level already.
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			slog.Error("failed to write config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *configPath)
		return
	}

	slog.Info("starting line editor",
		"canvas", []float64{cfg.Canvas.Width, cfg.Canvas.Height},
		"snap", cfg.Snap.Enabled)

	ed := editor.New(cfg)
	ui.RunApp(ed)
}
