// Package ecgui is a flat, function-per-widget layer over Fyne for people
// writing their first desktop program.
//
// A window holds rows of controls. Any row may be a frame holding more rows.
// Every AddX function builds one widget, styles it and packs it into its
// parent in one call:
//
//	win := ecgui.MakeWindow("Hello", "white")
//	row := ecgui.AddFrame(win, ecgui.BgColor("beige"), ecgui.Fill(ecgui.FillX))
//	ecgui.AddLabel(row, "Name:", ecgui.Side(ecgui.Left), ecgui.PadLeft(5))
//	name := ecgui.AddEntryBox(row, ecgui.Width(25), ecgui.Side(ecgui.Right))
//	btn := ecgui.AddButton(win, "Greet")
//	out := ecgui.AddLabel(win, "")
//	btn.OnClick(func() { ecgui.ChangeLabel(out, "Hello "+ecgui.GetEntryText(name)) })
//	win.Run()
//
// Children stack top to bottom unless docked with Side(Left) or Side(Right),
// following the Tk packer. Functions in this package touch widgets and must
// be called from the UI goroutine, which is where Fyne runs callbacks.
package ecgui
