package main

import (
	"context"
	"fmt"
	"image"
	"os"

	"meal-estimator/internal/app"
	"meal-estimator/internal/config"
	"meal-estimator/internal/imaging"
	"meal-estimator/internal/logger"
	"meal-estimator/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApplication(cfg, log, loadLogo(cfg, log))
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "initialization"})
		os.Exit(1)
	}

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(application)
	shutdownMgr.Listen(ctx)

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}

	log.Info("Main", "application terminated successfully", nil)
}

// loadLogo returns the configured logo scaled for the form, or nil. A logo
// that fails to load is logged and skipped.
func loadLogo(cfg config.Config, log logger.Logger) image.Image {
	if cfg.LogoPath == "" {
		return nil
	}

	pic, err := imaging.Load(cfg.LogoPath)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"logo": cfg.LogoPath})
		return nil
	}

	fitted, err := imaging.Fit(pic.Image, app.LogoWidth, app.LogoHeight)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"logo": cfg.LogoPath})
		return nil
	}

	log.Debug("Main", "logo loaded", map[string]interface{}{
		"path":   cfg.LogoPath,
		"format": pic.Format,
		"width":  pic.Width,
		"height": pic.Height,
	})
	return fitted
}
