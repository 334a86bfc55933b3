package app

import (
	"image"

	"meal-estimator/internal/config"
	"meal-estimator/internal/ecgui"
	"meal-estimator/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Meal Estimator"
	AppID      = "edu.ecgui.mealestimator"
	AppVersion = "1.1.0"
)

type Application struct {
	fyneApp   fyne.App
	form      *Form
	logger    logger.Logger
	lifecycle *Lifecycle
}

// NewApplication starts Fyne and builds the estimator window. logo may be
// nil.
func NewApplication(cfg config.Config, log logger.Logger, logo image.Image) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)
	ecgui.SetLogger(log)

	form := NewForm(cfg, log, logo)
	form.setupMenus(fyneApp.Quit)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"title":      cfg.WindowTitle,
		"background": cfg.Background,
		"logo":       logo != nil,
	})

	return &Application{
		fyneApp:   fyneApp,
		form:      form,
		logger:    log,
		lifecycle: NewLifecycle(fyneApp, form.Window(), log),
	}, nil
}

// Run blocks until the window is closed or Shutdown is called.
func (a *Application) Run() error {
	a.logger.Info("Application", "entering main loop", nil)
	a.form.Window().Run()
	a.logger.Info("Application", "main loop finished", nil)
	return nil
}

// Shutdown quits the app. Safe to call from any goroutine, more than once.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

// Form returns the estimator form.
func (a *Application) Form() *Form {
	return a.form
}
