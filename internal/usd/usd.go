// Package usd formats US dollar amounts for invoices and reports.
package usd

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount as a grouped dollar string, e.g. "$32,000.00".
// Reporting code never rounds internally; this is the presentation step.
func Format(amount float64) string {
	if amount < 0 {
		return "-" + Format(-amount)
	}
	return printer.Sprintf("$%.2f", amount)
}
