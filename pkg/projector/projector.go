// Package projector works out what is left of a balance once the bills due
// before the next payday have gone out.
//
// Days are plain day-of-month integers. There is no notion of month length:
// a bill on the 31st is compared as 31 in every month.
package projector

import (
	"github.com/shopspring/decimal"

	"github.com/yurifrl/balance/pkg/models"
)

// Wraps reports whether the window from currentDay to referenceDay crosses
// into next month. Equal days mean a full month ahead.
func Wraps(currentDay, referenceDay int) bool {
	return referenceDay <= currentDay
}

// Includes reports whether a bill paid on dayPaid falls inside the window
// (currentDay, referenceDay].
func Includes(dayPaid, currentDay, referenceDay int) bool {
	if Wraps(currentDay, referenceDay) {
		return dayPaid > currentDay || dayPaid <= referenceDay
	}
	return currentDay < dayPaid && dayPaid <= referenceDay
}

// Project returns balance minus every payment due inside the window.
// Amounts are summed at full precision; rounding is left to the caller.
func Project(balance decimal.Decimal, currentDay, referenceDay int, payments []models.Payment) decimal.Decimal {
	return Breakdown(balance, currentDay, referenceDay, payments).Remaining
}

// Result is a projection together with the bills that went into it.
type Result struct {
	Balance   decimal.Decimal
	Due       []models.Payment
	TotalDue  decimal.Decimal
	Remaining decimal.Decimal
	Wrapped   bool
}

// Breakdown runs the projection and keeps the included payments in input order.
func Breakdown(balance decimal.Decimal, currentDay, referenceDay int, payments []models.Payment) Result {
	total := decimal.Zero
	var due []models.Payment
	for _, p := range payments {
		if !Includes(p.DayPaid, currentDay, referenceDay) {
			continue
		}
		total = total.Add(p.Amount)
		due = append(due, p)
	}

	return Result{
		Balance:   balance,
		Due:       due,
		TotalDue:  total,
		Remaining: balance.Sub(total),
		Wrapped:   Wraps(currentDay, referenceDay),
	}
}
