package widget

import (
	"fmt"
	"github.com/shopspring/decimal"
	"go-fx-widget/convert"
	"go-fx-widget/domain"
	"strings"
)

const (
	// maxInputLength bounds the text of an amount
	maxInputLength = 64

	// maxExponent bounds the decimal exponent of an amount. Every float64 lies well inside it.
	maxExponent = 400
)

// ParseAmount parses a user-entered amount. Surrounding whitespace is ignored and
// plain or exponent notation is accepted ("1000", "12.5", "1e3"). Empty, non-numeric,
// zero and negative input fail with convert.ErrInvalidAmount, as does input longer than
// maxInputLength or with an exponent beyond ±maxExponent.
func ParseAmount(input string) (domain.Amount, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", convert.ErrInvalidAmount)
	}
	if len(s) > maxInputLength {
		return 0, fmt.Errorf("%w: longer than %d characters", convert.ErrInvalidAmount, maxInputLength)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", convert.ErrInvalidAmount, input)
	}
	// Float64 expands 10^exp exactly, so the exponent is checked first
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return 0, fmt.Errorf("%w: %q is out of range", convert.ErrInvalidAmount, input)
	}
	f, _ := d.Float64()
	amount := domain.Amount(f)
	if !convert.Valid(amount) {
		return 0, fmt.Errorf("%w: %q must be greater than zero", convert.ErrInvalidAmount, input)
	}
	return amount, nil
}
