package importer

import (
	"github.com/charmbracelet/log"

	"github.com/yurifrl/balance/pkg/models"
)

// Result counts what an import did to the store.
type Result struct {
	Added   []string
	Skipped []string
}

// Importer brings bills from a parsed sheet into a payment store. Existing
// bills are never overwritten; use adjust for that.
type Importer struct {
	store  *models.Store
	logger *log.Logger
}

// New returns a new Importer instance.
func New(store *models.Store, logger *log.Logger) *Importer {
	return &Importer{store: store, logger: logger}
}

// Import adds every payment whose name is not in the store yet, in input order.
func (i *Importer) Import(payments []models.Payment) Result {
	var res Result
	for _, p := range payments {
		if _, ok := i.store.Find(p.Name); ok {
			i.logger.Debug("payment already present, skipping", "name", p.Name)
			res.Skipped = append(res.Skipped, p.Name)
			continue
		}
		if err := i.store.Add(p); err != nil {
			i.logger.Warn("failed to add payment", "name", p.Name, "error", err)
			res.Skipped = append(res.Skipped, p.Name)
			continue
		}
		i.logger.Debug("imported payment", "name", p.Name, "amount", p.Amount.String(), "day_paid", p.DayPaid)
		res.Added = append(res.Added, p.Name)
	}
	return res
}
