package executors

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/balance/pkg/config"
	"github.com/yurifrl/balance/pkg/projector"
)

// ErrNoBalance is returned when compute has neither a balance nor an account.
var ErrNoBalance = errors.New("a balance or a YNAB account is required")

// ComputeOptions are the inputs of a projection. Nil days fall back to the
// configured reset day and today's day of month.
type ComputeOptions struct {
	Balance      *decimal.Decimal
	AccountID    string
	ReferenceDay *int
	CurrentDay   *int
	Verbose      bool
}

// Compute projects the balance to the reference day and prints it.
func (e *Executor) Compute(opts ComputeOptions) (projector.Result, error) {
	referenceDay := e.config.ResetDay
	if opts.ReferenceDay != nil {
		referenceDay = *opts.ReferenceDay
	}
	currentDay := e.now().Day()
	if opts.CurrentDay != nil {
		currentDay = *opts.CurrentDay
	}
	if err := config.ValidateDay(referenceDay); err != nil {
		return projector.Result{}, fmt.Errorf("reference day: %w", err)
	}
	if err := config.ValidateDay(currentDay); err != nil {
		return projector.Result{}, fmt.Errorf("current day: %w", err)
	}

	store, err := e.loadStore()
	if err != nil {
		return projector.Result{}, err
	}

	balance, err := e.resolveBalance(opts)
	if err != nil {
		return projector.Result{}, err
	}

	res := projector.Breakdown(balance, currentDay, referenceDay, store.Payments())
	e.logger.Debug("projected balance",
		"current_day", currentDay,
		"reference_day", referenceDay,
		"wrapped", res.Wrapped,
		"due", len(res.Due),
		"total_due", res.TotalDue.String(),
	)

	if opts.Verbose {
		e.printBreakdown(res)
	}
	fmt.Fprintln(e.out, renderBalance(e.config.Currency, res.Remaining))
	return res, nil
}

func (e *Executor) resolveBalance(opts ComputeOptions) (decimal.Decimal, error) {
	if opts.Balance != nil {
		return *opts.Balance, nil
	}
	if opts.AccountID == "" {
		return decimal.Zero, ErrNoBalance
	}

	accounts, err := e.fetcher()
	if err != nil {
		return decimal.Zero, err
	}
	acc, err := accounts.GetAccount(e.config.YNAB.BudgetID, opts.AccountID)
	if err != nil {
		return decimal.Zero, err
	}
	e.logger.Info("using YNAB balance", "account", acc.Name, "balance", acc.Balance.String())
	return acc.Balance, nil
}

func (e *Executor) printBreakdown(res projector.Result) {
	sym := e.config.Currency

	t := table.NewWriter()
	t.SetOutputMirror(e.out)
	t.AppendHeader(table.Row{"Bill", "Day paid", "Amount"})
	for _, p := range res.Due {
		t.AppendRow(table.Row{p.Name, p.DayPaid, FormatMoney(sym, p.Amount)})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "Balance", FormatMoney(sym, res.Balance)})
	t.AppendFooter(table.Row{"", "Due", FormatMoney(sym, res.TotalDue)})
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}
