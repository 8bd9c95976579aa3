package executors

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/k0kubun/pp/v3"

	"github.com/yurifrl/balance/pkg/csv"
	"github.com/yurifrl/balance/pkg/models"
)

var csvHeader = []string{"Name", "Amount", "DayPaid"}

// ListOptions picks the columns and format of the bill listing.
type ListOptions struct {
	Amount  bool
	DayPaid bool
	CSV     bool
	Dump    bool
}

// List prints every bill sorted by name.
func (e *Executor) List(opts ListOptions) error {
	store, err := e.loadStore()
	if err != nil {
		return err
	}
	payments := store.Sorted()

	switch {
	case opts.Dump:
		printer := pp.New()
		printer.SetOutput(e.out)
		printer.SetColoringEnabled(false)
		_, err := printer.Println(payments)
		return err
	case opts.CSV:
		out, err := csv.Create[models.Payment](csvHeader, payments, nil)
		if err != nil {
			return err
		}
		_, err = e.out.Write(out)
		return err
	}

	e.printTable(payments, opts)
	return nil
}

func (e *Executor) printTable(payments []models.Payment, opts ListOptions) {
	sym := e.config.Currency

	t := table.NewWriter()
	t.SetOutputMirror(e.out)

	header := table.Row{"Bill"}
	if opts.Amount {
		header = append(header, "Amount")
	}
	if opts.DayPaid {
		header = append(header, "Day paid")
	}
	t.AppendHeader(header)

	for _, p := range payments {
		row := table.Row{p.Name}
		if opts.Amount {
			row = append(row, FormatMoney(sym, p.Amount))
		}
		if opts.DayPaid {
			row = append(row, p.DayPaid)
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
}
