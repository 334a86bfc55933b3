package app

import (
	"image"

	"meal-estimator/internal/config"
	"meal-estimator/internal/ecgui"
	"meal-estimator/internal/logger"
)

const (
	instructionText = "Input Total price of the meal:  "
	rowBackground   = "beige"
	LogoWidth       = 300
	LogoHeight      = 200
)

// Form is the estimator window: one price entry, a submit button and three
// result lines.
type Form struct {
	window *ecgui.Window
	logo   *ecgui.ImageBox
	price  *ecgui.EntryBox
	submit *ecgui.Button
	total  *ecgui.Label
	tax    *ecgui.Label
	tip    *ecgui.Label
	logger logger.Logger
}

// NewForm builds the form in a new window of the current Fyne app.
func NewForm(cfg config.Config, log logger.Logger, logo image.Image) *Form {
	f := &Form{
		window: ecgui.MakeWindow(cfg.WindowTitle, cfg.Background),
		logger: log,
	}

	if logo != nil {
		f.logo = ecgui.AddImage(f.window, logo, ecgui.Size(LogoWidth, LogoHeight), ecgui.BgColor(cfg.Background))
	}

	f.price = f.buildEntryRow(instructionText)
	f.submit = ecgui.AddButton(f.window, "Submit", ecgui.Padding(6, 5, 4, 2))

	f.total = ecgui.AddLabel(f.window, "", ecgui.BgColor(cfg.Background))
	f.tax = ecgui.AddLabel(f.window, "", ecgui.BgColor(cfg.Background))
	f.tip = ecgui.AddLabel(f.window, "", ecgui.BgColor(cfg.Background))

	f.submit.OnClick(f.HandleSubmit)
	f.price.OnSubmitted = func(string) { f.HandleSubmit() }

	return f
}

// buildEntryRow adds a beige row with an instruction on the left and the
// text box on the right.
func (f *Form) buildEntryRow(message string) *ecgui.EntryBox {
	row := ecgui.AddFrame(f.window, ecgui.BgColor(rowBackground), ecgui.Fill(ecgui.FillX))
	ecgui.AddLabel(row, message, ecgui.BgColor(rowBackground), ecgui.Side(ecgui.Left), ecgui.PadLeft(5))
	return ecgui.AddEntryBox(row, ecgui.Width(25), ecgui.Side(ecgui.Right), ecgui.PadRight(5))
}

// Window returns the form's window.
func (f *Form) Window() *ecgui.Window {
	return f.window
}
