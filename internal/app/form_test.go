package app

import (
	"image"
	"testing"

	"meal-estimator/internal/config"
	"meal-estimator/internal/ecgui"
	"meal-estimator/internal/logger"
	"meal-estimator/internal/pricing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T, logo image.Image) *Form {
	t.Helper()
	test.NewTempApp(t)
	cfg := config.Config{WindowTitle: config.DefaultWindowTitle, Background: config.DefaultBackground}
	return NewForm(cfg, logger.NewNop(), logo)
}

func submitPrice(f *Form, price string) {
	f.price.SetText("")
	test.Type(f.price.Entry, price)
	test.Tap(f.submit.Button)
}

func TestFormLayout(t *testing.T) {
	f := newTestForm(t, nil)

	assert.Equal(t, "Total Price", f.Window().Title())
	assert.Equal(t, "Submit", f.submit.Text)
	assert.Nil(t, f.logo)
	assert.Equal(t, pricing.Lines{}, f.Results())
}

func TestSubmitValidPrice(t *testing.T) {
	f := newTestForm(t, nil)

	submitPrice(f, "100")

	assert.Equal(t, pricing.Lines{
		Total: "Total Price: $125.00",
		Tax:   "Tax: $7.00",
		Tip:   "Tip: $18.00",
	}, f.Results())
}

func TestSubmitInvalidPrice(t *testing.T) {
	f := newTestForm(t, nil)

	submitPrice(f, "100")
	submitPrice(f, "abc")

	assert.Equal(t, pricing.Lines{Total: pricing.InvalidInputMessage}, f.Results())
}

func TestSubmitLonePoint(t *testing.T) {
	f := newTestForm(t, nil)

	submitPrice(f, ".")

	assert.Equal(t, pricing.InvalidInputMessage, f.Results().Total)
}

func TestSubmitZeroIsAPrice(t *testing.T) {
	f := newTestForm(t, nil)

	submitPrice(f, "0")

	assert.Equal(t, "Total Price: $0.00", f.Results().Total)
}

func TestSubmitWithEnter(t *testing.T) {
	f := newTestForm(t, nil)

	test.Type(f.price.Entry, "12.50")
	f.price.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, "Total Price: $15.63", f.Results().Total)
	assert.Equal(t, "Tax: $0.88", f.Results().Tax)
	assert.Equal(t, "Tip: $2.25", f.Results().Tip)
}

func TestFormShowsLogo(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 10, 10))
	f := newTestForm(t, logo)

	require.NotNil(t, f.logo)
	assert.Same(t, logo, f.logo.Image())
}

func TestMenus(t *testing.T) {
	f := newTestForm(t, nil)
	quit := false
	f.setupMenus(func() { quit = true })

	menu := f.Window().Fyne().MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.Equal(t, "Help", menu.Items[1].Label)

	submitPrice(f, "100")
	menu.Items[0].Items[0].Action()
	assert.Empty(t, ecgui.GetEntryText(f.price))
	assert.Equal(t, pricing.Lines{}, f.Results())

	menu.Items[0].Items[2].Action()
	assert.True(t, quit)
}
