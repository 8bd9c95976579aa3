package executors

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNothingToAdjust is returned when adjust gets neither an amount nor a day.
var ErrNothingToAdjust = errors.New("nothing to adjust: pass an amount or a day paid")

// AdjustOptions carries the fields to overwrite; nil fields are left alone.
type AdjustOptions struct {
	Amount  *decimal.Decimal
	DayPaid *int
}

// Adjust updates one bill and saves the payments file. Nothing is written
// unless every change succeeded.
func (e *Executor) Adjust(name string, opts AdjustOptions) error {
	if opts.Amount == nil && opts.DayPaid == nil {
		return ErrNothingToAdjust
	}

	store, err := e.loadStore()
	if err != nil {
		return err
	}

	if opts.Amount != nil {
		if err := store.SetAmount(name, *opts.Amount); err != nil {
			return err
		}
		e.logger.Info("adjusted amount", "name", name, "amount", opts.Amount.String())
	}
	if opts.DayPaid != nil {
		if err := store.SetDayPaid(name, *opts.DayPaid); err != nil {
			return err
		}
		e.logger.Info("adjusted day paid", "name", name, "day_paid", *opts.DayPaid)
	}

	return e.persist(store)
}
