// Command walkthrough opens a first-person walkthrough of a single model scene.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"walkthrough/internal/assets"
	"walkthrough/internal/config"
	"walkthrough/internal/gate"
	"walkthrough/internal/graphics"
	"walkthrough/internal/logger"
)

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to the YAML config")
	prefsPath := flag.String("prefs", config.PrefsPath, "path to the JSON engine prefs")
	verbose := flag.Bool("v", false, "mirror log lines to stderr")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	lc := logger.Config{Path: cfg.Log.Path, Level: cfg.Log.Level}
	if *verbose {
		lc.Output = os.Stderr
	}
	log := logger.New(lc)
	slog.SetDefault(log.Slog())
	if cfgErr != nil {
		log.Warn("using default config", "path", *configPath, "err", cfgErr)
	}

	var store gate.Store
	if m, err := gate.OpenStore(); err != nil {
		log.Warn("persisted data unavailable", "err", err)
	} else {
		store = m
	}

	loader := assets.NewLoader(cfg.Assets.Dir, assets.ModelDecoder{}, log)
	a, err := newApp(cfg, config.LoadPrefs(*prefsPath), *prefsPath, gate.New(store, log), loader, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "walkthrough:", err)
		os.Exit(1)
	}
	graphics.Run(cfg.Window, a.update, a.draw, a.close)
}
