package convert

import (
	"context"
	"errors"
	"fmt"
	"go-fx-widget/domain"
	"math"
)

// ErrInvalidAmount is returned for amounts that are not finite and positive.
var ErrInvalidAmount = errors.New("invalid amount")

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error)
}

// RateLookup finds the directed rate between two currencies.
// Implementations must be safe for concurrent reads.
type RateLookup interface {
	Lookup(from domain.Currency, to domain.Currency) (domain.Rate, error)
}

// service converts with a fixed rate lookup
type service struct {
	// rates to look up directed exchange rates
	rates RateLookup

	// precision decides the rounding scale of the target currency
	precision Precision
}

// NewService constructs a valid Service
func NewService(rates RateLookup, precision Precision) Service {
	return &service{
		rates:     rates,
		precision: precision,
	}
}

// Convert computes a conversion from one currency to another.
// The returned rate is exactly 1 for the identity pair, otherwise the table entry;
// the returned amount is rounded for the target currency.
func (s *service) Convert(_ context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error) {
	if !Valid(amount) {
		return domain.Exchanged{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	var rate domain.Rate = 1
	raw := float64(amount)
	if from != to {
		var err error
		rate, err = s.rates.Lookup(from, to)
		if err != nil {
			return domain.Exchanged{}, fmt.Errorf("convert %v to %v: %w", from, to, err)
		}
		raw = float64(amount) * float64(rate)
	}

	rounded := domain.Amount(Round(raw, s.precision.Places(to)))
	if !finite(raw) || !finite(float64(rounded)) {
		return domain.Exchanged{}, fmt.Errorf("%w: %v %v overflows converted to %v", ErrInvalidAmount, amount, from, to)
	}

	return domain.Exchanged{
		Rate:   rate,
		Amount: rounded,
	}, nil
}

// Valid reports whether amount may be converted: finite and greater than zero.
func Valid(amount domain.Amount) bool {
	return finite(float64(amount)) && amount > 0
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
