package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yurifrl/balance/pkg/models"
)

// ParseBillsCSV parses a Name,Amount,DayPaid CSV, the format `list --csv` writes.
func (p *Parser) ParseBillsCSV(data []byte) ([]models.Payment, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // validated per row

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	return p.fromRows(records), nil
}
