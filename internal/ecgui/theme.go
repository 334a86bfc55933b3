package ecgui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// charCell is the size of one "0" in the theme text font, the unit Tk uses
// for character widths.
func charCell() fyne.Size {
	return fyne.MeasureText("0", theme.TextSize(), fyne.TextStyle{})
}

func innerPadding() float32 {
	return theme.InnerPadding()
}
