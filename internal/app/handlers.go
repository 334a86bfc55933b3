package app

import (
	"meal-estimator/internal/ecgui"
	"meal-estimator/internal/pricing"
)

// HandleSubmit prices whatever is in the entry and shows the breakdown.
func (f *Form) HandleSubmit() {
	ecgui.ChangeLabel(f.total, "")
	ecgui.ChangeLabel(f.tax, "")
	ecgui.ChangeLabel(f.tip, "")

	text := ecgui.GetEntryText(f.price)
	quote, err := pricing.Calculate(text)
	if err != nil {
		f.logger.Debug("Form", "rejected price input", map[string]interface{}{
			"input": text,
			"error": err.Error(),
		})
		ecgui.ChangeLabel(f.total, pricing.InvalidInputMessage)
		return
	}

	lines := pricing.Render(quote)
	ecgui.ChangeLabel(f.total, lines.Total)
	ecgui.ChangeLabel(f.tax, lines.Tax)
	ecgui.ChangeLabel(f.tip, lines.Tip)

	f.logger.Info("Form", "quote computed", map[string]interface{}{
		"amount": quote.Amount,
		"tax":    quote.Tax,
		"tip":    quote.Tip,
		"total":  quote.Total,
	})
}

// Results returns the three result lines currently shown.
func (f *Form) Results() pricing.Lines {
	return pricing.Lines{
		Total: ecgui.GetLabelText(f.total),
		Tax:   ecgui.GetLabelText(f.tax),
		Tip:   ecgui.GetLabelText(f.tip),
	}
}
