// Package currency renders monetary amounts for display. Every price shown
// to the user goes through FormatPrice so subtotal, shipping and total are
// always formatted consistently.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice formats an amount as Brazilian real with two decimal places,
// e.g. "R$ 1.234,56".
func FormatPrice(amount decimal.Decimal) string {
	v := amount.Round(2).InexactFloat64()
	return printer.Sprintf("R$ %v",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
