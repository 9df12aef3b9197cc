package handlers

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printerFor(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// formatMoney renders a whole-unit amount after the currency symbol, with
// digits grouped the way the printer's locale expects.
func formatMoney(p *message.Printer, unit currency.Unit, amount int64) string {
	return p.Sprint(currency.Symbol(unit)) + " " + p.Sprintf("%d", amount)
}

func formatPercent(p *message.Printer, percent float64) string {
	return p.Sprintf("%.1f%%", percent)
}
