package widget

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go-fx-widget/convert"
	"go-fx-widget/domain"
	"strings"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Amount
		wantErr bool
	}{
		{"1000", 1000, false},
		{"12.5", 12.5, false},
		{"  42 ", 42, false},
		{"1e3", 1000, false},
		{"0.0001", 0.0001, false},
		{"", 0, true},
		{"   ", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1,000", 0, true},
		{"1e300", 1e300, false},
		{"1e30000000", 0, true},
		{"1e-30000000", 0, true},
		{"1e309", 0, true},
		{strings.Repeat("1", 65), 0, true},
	}
	for _, tt := range tests {
		name := tt.input
		if len(name) > 20 {
			name = name[:20]
		}
		t.Run(name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, convert.ErrInvalidAmount), "err = %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_HugeExponentIsFast(t *testing.T) {
	begin := time.Now()
	_, err := ParseAmount("9e2147483647")
	assert.True(t, errors.Is(err, convert.ErrInvalidAmount))
	assert.Less(t, time.Since(begin), time.Second)
}
