package widget

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"go-fx-widget/convert"
	"go-fx-widget/domain"
	"go-fx-widget/history"
	"go-fx-widget/rates"
	"time"
)

// ErrConversionUnavailable is returned when the selected pair has no rate
var ErrConversionUnavailable = errors.New("conversion unavailable")

// State the complete state of a converter widget.
// A nil Result means there is no valid result for the current pair.
type State struct {
	Amount  string
	From    domain.Currency
	To      domain.Currency
	Result  *domain.Exchanged
	History history.Log
}

// NewState returns an empty State for the given pair
func NewState(from domain.Currency, to domain.Currency) State {
	return State{From: from, To: to}
}

// Widget applies transitions to a State. Transitions take a State and return the next
// one; a Widget holds no State of its own.
type Widget struct {
	converter convert.Service
	now       func() time.Time
	newID     func() string
	logger    log.Logger
}

// Option configures a Widget
type Option func(*Widget)

// WithClock sets the clock used to timestamp history records
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(w *Widget) {
		w.logger = logger
	}
}

// New constructs a Widget over a converter
func New(converter convert.Service, options ...Option) *Widget {
	w := &Widget{
		converter: converter,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
		logger:    log.NewNopLogger(),
	}
	for _, o := range options {
		o(w)
	}
	return w
}

// SetAmount replaces the entered amount. The current result stays valid until the next Convert.
func (w *Widget) SetAmount(s State, amount string) State {
	s.Amount = amount
	return s
}

// SelectFrom changes the source currency and invalidates the result
func (w *Widget) SelectFrom(s State, from domain.Currency) State {
	s.From = from
	s.Result = nil
	return s
}

// SelectTo changes the target currency and invalidates the result
func (w *Widget) SelectTo(s State, to domain.Currency) State {
	s.To = to
	s.Result = nil
	return s
}

// Swap exchanges the source and target currencies and invalidates the result.
// Nothing is recomputed.
func (w *Widget) Swap(s State) State {
	s.From, s.To = s.To, s.From
	s.Result = nil
	return s
}

// ClearHistory empties the history
func (w *Widget) ClearHistory(s State) State {
	s.History = s.History.Clear()
	return s
}

// Convert converts the entered amount for the selected pair and records it.
//
// An invalid amount returns s unchanged with an error wrapping convert.ErrInvalidAmount.
// A missing rate clears the result, leaves the history alone and returns an error
// wrapping ErrConversionUnavailable.
func (w *Widget) Convert(ctx context.Context, s State) (State, error) {
	amount, err := ParseAmount(s.Amount)
	if err != nil {
		return s, err
	}

	ex, err := w.converter.Convert(ctx, amount, s.From, s.To)
	if errors.Is(err, convert.ErrInvalidAmount) {
		return s, err
	}
	if err != nil {
		if errors.Is(err, rates.ErrRateNotFound) {
			level.Error(w.logger).Log("msg", "rate table gap", "from", s.From, "to", s.To, "err", err)
		}
		s.Result = nil
		return s, fmt.Errorf("%w: %w", ErrConversionUnavailable, err)
	}

	s.Result = &ex
	s.History = s.History.Record(domain.Record{
		ID:             w.newID(),
		Timestamp:      w.now(),
		SourceAmount:   amount,
		SourceCurrency: s.From,
		TargetAmount:   ex.Amount,
		TargetCurrency: s.To,
		Rate:           ex.Rate,
	})
	return s, nil
}
