// Package format renders values for display.
package format

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Price renders amount with English digit grouping and two decimals,
// prefixed by the ISO currency code: "USD 1,234.56".
// An unrecognized code is kept as given; an empty one is omitted.
func Price(amount float64, code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return printer.Sprintf("%.2f", amount)
	}

	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}
	return printer.Sprintf("%s %.2f", code, amount)
}
