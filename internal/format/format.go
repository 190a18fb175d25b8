// Package format reimplements the display formatting the frontend
// applies to activity data, so specs can compute the exact on-page text
// from raw fixture values instead of hard-coding rendered strings.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AgeRange renders an activity age restriction the way the search and
// detail pages do. Returns nil when neither bound is set (the page
// omits the element entirely in that case).
func AgeRange(min, max *int) *string {
	var text string
	switch {
	case min != nil && max != nil:
		text = fmt.Sprintf("%d - %d ans", *min, *max)
	case min != nil:
		text = fmt.Sprintf("À partir de %d ans", *min)
	case max != nil:
		text = fmt.Sprintf("Jusqu'à %d ans", *max)
	default:
		return nil
	}
	return &text
}

// PriceFromCents converts an integer cent amount to euros, exactly.
func PriceFromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

// PriceText renders a cent amount as the French price label shown in
// the UI: comma decimal separator, no trailing ",00", narrow no-break
// space before the euro sign is normalized to a plain space.
func PriceText(cents int64) string {
	euros := PriceFromCents(cents)

	var number string
	if euros.IsInteger() {
		number = euros.StringFixed(0)
	} else {
		number = euros.StringFixed(2)
	}
	number = strings.ReplaceAll(number, ".", ",")
	return number + " €"
}

// ProgressColor maps an attendance rate in [0,100] to the Material
// palette name the progress bar uses.
func ProgressColor(rate int) string {
	switch {
	case rate >= 80:
		return "primary"
	case rate >= 50:
		return "accent"
	default:
		return "warn"
	}
}
