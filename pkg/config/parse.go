package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for amounts that are not decimals or are negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDay is returned for days that are not integers or are out of range.
	ErrInvalidDay = errors.New("invalid day")
)

const (
	MinDayPaid = 1
	MaxDayPaid = 28
	MaxDay     = 31
)

// ParseBalance parses an account balance. Negative balances are allowed.
func ParseBalance(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: `%s` isn't a decimal", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseAmount parses a bill amount, which must be zero or more.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := ParseBalance(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount not greater than or equal to zero", ErrInvalidAmount)
	}
	return d, nil
}

// ParseDayPaid parses the day a bill is paid on. Only days present in every
// month are accepted.
func ParseDayPaid(s string) (int, error) {
	return parseDay(s, MinDayPaid, MaxDayPaid)
}

// ValidateDay checks a day of month that was already parsed by a flag.
func ValidateDay(day int) error {
	if day < 1 || day > MaxDay {
		return fmt.Errorf("%w: day not in range 1-%d", ErrInvalidDay, MaxDay)
	}
	return nil
}

func parseDay(s string, min, max int) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: `%s` isn't an integer", ErrInvalidDay, s)
	}
	if day < min || day > max {
		return 0, fmt.Errorf("%w: day not in range %d-%d", ErrInvalidDay, min, max)
	}
	return day, nil
}
