// Package currency is the single shared monetary formatting rule:
// rupiah with Indonesian thousands grouping and no fractional digits.
// Dashboard responses, reports, and AI prompts all go through it.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-rupiah amount, e.g. "Rp15.000.000.000".
func FormatRupiah(amount int64) string {
	return printer.Sprintf("Rp%v", number.Decimal(amount))
}

// FormatBalance renders a signed balance the way reports display it:
// negative amounts are parenthesized absolute values.
func FormatBalance(balance int64) string {
	if balance < 0 {
		return "(" + FormatRupiah(-balance) + ")"
	}
	return FormatRupiah(balance)
}
