package ecgui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MessageKind picks the icon of a message box.
type MessageKind int

const (
	InfoMessage MessageKind = iota
	WarningMessage
	ErrorMessage
)

func (k MessageKind) icon() fyne.Resource {
	switch k {
	case InfoMessage:
		return theme.InfoIcon()
	case WarningMessage:
		return theme.WarningIcon()
	default:
		return theme.ErrorIcon()
	}
}

// ShowMessageBox pops up a titled message over win with a single OK button.
// Any kind other than InfoMessage or WarningMessage is shown as an error.
func ShowMessageBox(win *Window, title, message string, kind MessageKind) dialog.Dialog {
	content := container.NewHBox(widget.NewIcon(kind.icon()), widget.NewLabel(message))
	d := dialog.NewCustom(title, "OK", content, win.win)
	d.Show()
	return d
}
