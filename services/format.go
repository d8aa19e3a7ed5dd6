package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"airbnb-dashboard/models"
)

// NoDataMessage is shown when an estimate matches no listing.
const NoDataMessage = "No data available for the selected neighborhood and room type."

// Money formats amounts with two decimals for a display locale.
type Money struct {
	printer *message.Printer
	symbol  string
}

// NewMoney builds a Money formatter. An unparsable locale falls back to English.
func NewMoney(locale, symbol string) *Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Money{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format renders v rounded to two decimals followed by the currency symbol.
func (m *Money) Format(v float64) string {
	if m.symbol == "" {
		return m.printer.Sprintf("%.2f", v)
	}
	return m.printer.Sprintf("%.2f %s", v, m.symbol)
}

// EstimateLines renders an estimate as the text shown to the user.
func (m *Money) EstimateLines(est models.PriceEstimate) []string {
	if est.NoData {
		return []string{NoDataMessage}
	}
	return []string{
		"Average price per night: " + m.Format(est.Average),
		"Minimum price per night: " + m.Format(est.Min),
		"Maximum price per night: " + m.Format(est.Max),
		m.printer.Sprintf("Total cost for %d nights: ", est.Nights) + m.Format(est.Total),
	}
}
