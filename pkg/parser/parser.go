package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/balance/pkg/config"
	"github.com/yurifrl/balance/pkg/models"
)

type FileType string

const (
	BillsXLS FileType = "bills_xls"
	BillsTXT FileType = "bills_txt"
	BillsCSV FileType = "bills_csv"
)

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ProcessBytes parses a bill sheet. The format is picked from the file extension.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.Payment, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	switch fileType {
	case BillsXLS:
		return p.ParseBillsXLS(data)
	case BillsTXT:
		return p.ParseBillsTXT(data)
	case BillsCSV:
		return p.ParseBillsCSV(data)
	default:
		return nil, fmt.Errorf("unknown file type: %s", filename)
	}
}

func detectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return BillsXLS
	case ".txt":
		return BillsTXT
	case ".csv":
		return BillsCSV
	}
	return ""
}

// Supported reports whether filename has an extension ProcessBytes understands.
func Supported(filename string) bool {
	return detectType(filename) != ""
}

// isHeader reports whether a row is the optional `name, amount, day` header.
func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name")
}

// fromRows turns name/amount/day rows into payments. Malformed rows are
// skipped and logged at debug level.
func (p *Parser) fromRows(rows [][]string) []models.Payment {
	payments := make([]models.Payment, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 {
			p.logger.Debug("row has less than 3 fields, skipping", "line", i+1)
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			p.logger.Debug("row without name, skipping", "line", i+1)
			continue
		}

		// accept both 12,50 and 12.50
		amount, err := config.ParseAmount(strings.ReplaceAll(row[1], ",", "."))
		if err != nil {
			p.logger.Debug("invalid amount, skipping", "line", i+1, "error", err)
			continue
		}
		day, err := config.ParseDayPaid(row[2])
		if err != nil {
			p.logger.Debug("invalid day, skipping", "line", i+1, "error", err)
			continue
		}

		payments = append(payments, models.NewPayment(name, amount, day))
	}
	return payments
}
