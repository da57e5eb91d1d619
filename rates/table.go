package rates

import (
	"errors"
	"fmt"
	"go-fx-widget/domain"
	"math"
)

// ErrRateNotFound is returned when a directed pair is missing from the table.
// With a table built by NewTable this points at a configuration gap.
var ErrRateNotFound = errors.New("rate not found")

// ErrInvalidTable is returned by NewTable for rates or rows that break the table rules.
var ErrInvalidTable = errors.New("invalid rate table")

// Table an immutable lookup of directed exchange rates.
// A Table is safe for concurrent reads.
type Table struct {
	// currencies the declared codes in display order
	currencies []domain.Currency

	// rates maps a source currency to the rates from it
	rates map[domain.Currency]domain.Rates
}

// NewTable builds a Table over the declared currencies.
// Every rate must be positive and finite, every code must be declared, and both
// directions of every pair of distinct currencies must be present. Inverses are
// never derived, so rate(A,B) * rate(B,A) need not equal 1.
func NewTable(currencies []domain.Currency, rates map[domain.Currency]domain.Rates) (*Table, error) {
	declared := make(map[domain.Currency]bool, len(currencies))
	for _, c := range currencies {
		if declared[c] {
			return nil, fmt.Errorf("%w: duplicate currency %v", ErrInvalidTable, c)
		}
		declared[c] = true
	}

	copied := make(map[domain.Currency]domain.Rates, len(rates))
	for from, row := range rates {
		if !declared[from] {
			return nil, fmt.Errorf("%w: undeclared currency %v", ErrInvalidTable, from)
		}
		r := make(domain.Rates, len(row))
		for to, rate := range row {
			if !declared[to] {
				return nil, fmt.Errorf("%w: undeclared currency %v", ErrInvalidTable, to)
			}
			if to == from {
				return nil, fmt.Errorf("%w: identity pair %v-%v is implicit", ErrInvalidTable, from, to)
			}
			f := float64(rate)
			if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
				return nil, fmt.Errorf("%w: rate %v-%v must be positive and finite, got %v", ErrInvalidTable, from, to, rate)
			}
			r[to] = rate
		}
		copied[from] = r
	}

	for _, from := range currencies {
		for _, to := range currencies {
			if from == to {
				continue
			}
			if _, ok := copied[from][to]; !ok {
				return nil, fmt.Errorf("%w: missing rate %v-%v", ErrInvalidTable, from, to)
			}
		}
	}

	return &Table{
		currencies: append([]domain.Currency(nil), currencies...),
		rates:      copied,
	}, nil
}

// MustNewTable is NewTable that panics on an invalid table. Meant for compiled-in tables.
func MustNewTable(currencies []domain.Currency, rates map[domain.Currency]domain.Rates) *Table {
	t, err := NewTable(currencies, rates)
	if err != nil {
		panic(fmt.Sprintf("rates: %v", err))
	}
	return t
}

// Lookup returns the rate for converting from one currency to another.
// The identity pair always yields 1 without touching the table.
func (t *Table) Lookup(from domain.Currency, to domain.Currency) (domain.Rate, error) {
	if from == to {
		return 1, nil
	}
	rate, ok := t.rates[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v-%v", ErrRateNotFound, from, to)
	}
	return rate, nil
}

// Currencies returns the declared currencies in display order.
func (t *Table) Currencies() []domain.Currency {
	return append([]domain.Currency(nil), t.currencies...)
}

// Supports reports whether the currency is declared by the table.
func (t *Table) Supports(currency domain.Currency) bool {
	for _, c := range t.currencies {
		if c == currency {
			return true
		}
	}
	return false
}
