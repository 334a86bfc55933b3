package app

import (
	"fmt"

	"meal-estimator/internal/ecgui"
	"meal-estimator/internal/pricing"

	"fyne.io/fyne/v2"
)

func (f *Form) setupMenus(quit func()) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear", f.Clear),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", quit),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", f.showAbout),
	)

	f.window.Fyne().SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// Clear empties the price entry and the results.
func (f *Form) Clear() {
	ecgui.ClearEntryBox(f.price)
	ecgui.ChangeLabel(f.total, "")
	ecgui.ChangeLabel(f.tax, "")
	ecgui.ChangeLabel(f.tip, "")
}

func (f *Form) showAbout() {
	message := fmt.Sprintf("%s %s\n\nTax is %.0f%% and tip is %.0f%% of the meal price.",
		AppName, AppVersion, pricing.TaxFactor*100, pricing.TipFactor*100)
	ecgui.ShowMessageBox(f.window, "About", message, ecgui.InfoMessage)
}
