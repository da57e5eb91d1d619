package rates

import "go-fx-widget/domain"

// CurrencyInfo display metadata for a currency
type CurrencyInfo struct {
	Code   domain.Currency `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Flag   string          `json:"flag"`
}

var currencyInfo = map[domain.Currency]CurrencyInfo{
	JPY: {Code: JPY, Name: "Japanese Yen", Symbol: "¥", Flag: "🇯🇵"},
	KRW: {Code: KRW, Name: "South Korean Won", Symbol: "₩", Flag: "🇰🇷"},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€", Flag: "🇪🇺"},
	GBP: {Code: GBP, Name: "Pound Sterling", Symbol: "£", Flag: "🇬🇧"},
}

// Info returns display metadata for a currency. Unknown codes fall back to the
// code itself as name and symbol.
func Info(currency domain.Currency) CurrencyInfo {
	if info, ok := currencyInfo[currency]; ok {
		return info
	}
	return CurrencyInfo{Code: currency, Name: string(currency), Symbol: string(currency)}
}

// Symbol returns the display symbol of a currency
func Symbol(currency domain.Currency) string {
	return Info(currency).Symbol
}

// Catalog returns metadata for every currency of the table, in display order
func (t *Table) Catalog() []CurrencyInfo {
	catalog := make([]CurrencyInfo, 0, len(t.currencies))
	for _, c := range t.currencies {
		catalog = append(catalog, Info(c))
	}
	return catalog
}
