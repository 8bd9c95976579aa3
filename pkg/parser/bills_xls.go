package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"

	"github.com/yurifrl/balance/pkg/models"
)

const maxXLSRows = 1000

// ParseBillsXLS reads the first sheet of a spreadsheet with name, amount and
// day columns.
func (p *Parser) ParseBillsXLS(data []byte) ([]models.Payment, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(maxXLSRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}
	p.logger.Debug("read spreadsheet", "rows", len(rows))

	return p.fromRows(rows), nil
}
