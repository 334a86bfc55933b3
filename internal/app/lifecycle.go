package app

import (
	"sync"

	"meal-estimator/internal/ecgui"
	"meal-estimator/internal/logger"

	"fyne.io/fyne/v2"
)

type Lifecycle struct {
	fyneApp fyne.App
	window  *ecgui.Window
	logger  logger.Logger
	once    sync.Once
}

func NewLifecycle(fyneApp fyne.App, window *ecgui.Window, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		window:  window,
		logger:  log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		fyne.Do(func() {
			l.window.Close()
			l.fyneApp.Quit()
		})

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
