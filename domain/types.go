package domain

import "time"

// Currency a currency code
type Currency string

// Amount a monetary amount, floating point by choice
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps a target currency to the rate applied from a fixed source currency
type Rates map[Currency]Rate

// Exchanged the outcome of a single conversion
type Exchanged struct {
	Rate   Rate
	Amount Amount
}

// Record a completed conversion as kept in the history.
// Records are created once and never modified afterwards.
type Record struct {
	ID        string
	Timestamp time.Time

	SourceAmount   Amount
	SourceCurrency Currency
	TargetAmount   Amount
	TargetCurrency Currency
	Rate           Rate
}
