package rates

import "go-fx-widget/domain"

const (
	JPY domain.Currency = "JPY"
	KRW domain.Currency = "KRW"
	EUR domain.Currency = "EUR"
	GBP domain.Currency = "GBP"
)

// referenceRates are hand-tuned in both directions. The pairs are not exact
// reciprocals of each other and are kept as given.
var referenceRates = map[domain.Currency]domain.Rates{
	JPY: {GBP: 0.00487, EUR: 0.00553, KRW: 9.35},
	GBP: {JPY: 205.199, EUR: 1.13557, KRW: 1922.33},
	EUR: {JPY: 180.699, GBP: 0.88044, KRW: 1692.24},
	KRW: {JPY: 0.107, EUR: 0.00059, GBP: 0.00052},
}

// Reference returns the built-in table over JPY, KRW, EUR and GBP.
func Reference() *Table {
	return MustNewTable([]domain.Currency{JPY, KRW, EUR, GBP}, referenceRates)
}
