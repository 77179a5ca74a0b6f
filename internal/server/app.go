package server

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"Emberwick/internal/dialogue"
	"Emberwick/internal/game"
	"Emberwick/internal/logger"
)

// StartApp wires all collaborators once at startup and runs the server.
// A script file that exists but fails to load or validate is a configuration
// error and aborts startup; nothing is discovered or repaired at runtime.
func StartApp(cfg AppConfig) {
	log := logger.Setup(cfg.Environment, cfg.LogLevel)

	script, seeded, err := resolveScript(cfg.ScriptPath)
	if err != nil {
		log.Error("script load failed", "path", cfg.ScriptPath, "err", err)
		os.Exit(1)
	}
	if seeded {
		log.Info("no script file found, using seed content", "path", cfg.ScriptPath)
	}
	log.Info("script loaded", "triggers", len(script.Triggers), "spotlights", len(script.Spotlights))

	hub := game.NewHub(script)

	// Periodic cleanup of empty rooms.
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			hub.CleanupEmptyRooms()
		}
	}()

	log.Info("starting web server", "addr", cfg.Addr, "environment", cfg.Environment)
	startServer(hub, cfg.Addr)
}

// resolveScript loads authored content from disk, falling back to the seed
// script when the path is empty or no file exists there. The bool reports
// whether the fallback was taken.
func resolveScript(path string) (*dialogue.Script, bool, error) {
	if path == "" {
		return dialogue.SeedVillageScript(), true, nil
	}
	script, err := dialogue.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dialogue.SeedVillageScript(), true, nil
		}
		return nil, false, err
	}
	return script, false, nil
}
