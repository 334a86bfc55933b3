package ecgui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// RadioButtons is a group of mutually exclusive options.
type RadioButtons struct {
	Group *widget.RadioGroup
	// Button is set when the group was created with ButtonMessage.
	Button *Button
	names  []string
}

// AddRadioButtons adds one radio button per name, stacked unless Horizontal
// is given. The returned binding holds the index of the selected button,
// initially Selected (0 by default).
func AddRadioButtons(parent Container, names []string, opts ...Option) (*RadioButtons, binding.Int) {
	s := buildSettings(settings{spacing: 5}, opts)
	choice := binding.NewInt()

	rb := &RadioButtons{names: append([]string(nil), names...)}
	rb.Group = widget.NewRadioGroup(rb.names, func(selected string) {
		if i := indexOf(rb.names, selected); i >= 0 {
			_ = choice.Set(i)
		}
	})
	rb.Group.Horizontal = s.horizontal
	rb.Group.Required = true

	f := parent.frame()
	item := settings{pad: insets{s.spacing, s.spacing, s.spacing, s.spacing}}
	if s.horizontal {
		item.side = Left
	}
	f.pack(rb.Group, item, false)

	if s.buttonMessage != "" {
		rb.Button = &Button{Button: widget.NewButton(s.buttonMessage, nil)}
		f.pack(rb.Button.Button, item, false)
	}

	choice.AddListener(binding.NewDataListener(func() {
		i, err := choice.Get()
		if err != nil || i < 0 || i >= len(rb.names) {
			return
		}
		rb.Group.SetSelected(rb.names[i])
	}))
	rb.selectIndex(s.selected)

	return rb, choice
}

func (rb *RadioButtons) selectIndex(i int) {
	if i >= 0 && i < len(rb.names) {
		rb.Group.SetSelected(rb.names[i])
	}
}

// SelectedIndex returns the index of the selected button, or -1.
func (rb *RadioButtons) SelectedIndex() int {
	return indexOf(rb.names, rb.Group.Selected)
}

// SelectRadioButton selects the button at index through its binding.
func SelectRadioButton(choice binding.Int, index int) {
	_ = choice.Set(index)
}

// AddCheckBox adds a single check box. The binding reports whether it is
// ticked.
func AddCheckBox(parent Container, name string, opts ...Option) (*widget.Check, binding.Bool) {
	s := buildSettings(settings{}, opts)
	checked := binding.NewBool()
	check := widget.NewCheckWithData(name, checked)
	parent.frame().pack(check, s, false)
	return check, checked
}

// AddCheckBoxes adds one unticked check box per name, stacked unless
// Horizontal is given, and returns one binding per box.
func AddCheckBoxes(parent Container, names []string, opts ...Option) []binding.Bool {
	s := buildSettings(settings{spacing: 5}, opts)
	f := parent.frame()

	item := settings{pad: insets{s.spacing, s.spacing, s.spacing, s.spacing}}
	if s.horizontal {
		item.side = Left
	}

	choices := make([]binding.Bool, 0, len(names))
	for _, name := range names {
		checked := binding.NewBool()
		f.pack(widget.NewCheckWithData(name, checked), item, false)
		choices = append(choices, checked)
	}
	return choices
}

// Dropdown is a pick-one list, Width characters wide.
type Dropdown struct {
	*widget.Select
	root *fyne.Container
}

// AddDropdown adds a dropdown of options. The binding holds the chosen
// option, initially SelectedOption (none by default).
func AddDropdown(parent Container, options []string, opts ...Option) (*Dropdown, binding.String) {
	s := buildSettings(settings{width: 10}, opts)
	choice := binding.NewString()

	d := &Dropdown{Select: widget.NewSelect(append([]string(nil), options...), func(selected string) {
		_ = choice.Set(selected)
	})}
	d.root = container.New(&charBox{cols: s.width}, d.Select)

	choice.AddListener(binding.NewDataListener(func() {
		v, err := choice.Get()
		if err != nil || v == d.Selected {
			return
		}
		d.setSelected(v)
	}))
	d.setSelected(s.selectedText)

	parent.frame().pack(d.root, s, false)
	return d, choice
}

func (d *Dropdown) setSelected(option string) {
	if option == "" {
		d.ClearSelected()
		return
	}
	d.SetSelected(option)
}

// ChangeDropdownList replaces the options of d and selects selected, which
// may be empty.
func ChangeDropdownList(d *Dropdown, choice binding.String, options []string, selected string) {
	d.Options = append([]string(nil), options...)
	d.ClearSelected()
	d.setSelected(selected)
	d.Refresh()
	_ = choice.Set(d.Selected)
}

// CanvasObject exposes the dropdown, as packed, to plain Fyne code.
func (d *Dropdown) CanvasObject() fyne.CanvasObject { return d.root }

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
