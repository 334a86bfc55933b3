package pricing

import "fmt"

// InvalidInputMessage is shown in place of a quote when the price is not a
// numeral.
const InvalidInputMessage = "Inputs must be numeric"

// Lines is a quote formatted for display.
type Lines struct {
	Total string
	Tax   string
	Tip   string
}

// Render formats q in dollars and cents.
func Render(q Quote) Lines {
	return Lines{
		Total: fmt.Sprintf("Total Price: $%.2f", q.Total),
		Tax:   fmt.Sprintf("Tax: $%.2f", q.Tax),
		Tip:   fmt.Sprintf("Tip: $%.2f", q.Tip),
	}
}
