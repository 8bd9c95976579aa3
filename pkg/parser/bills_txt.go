package parser

import (
	"strings"

	"github.com/yurifrl/balance/pkg/models"
)

// ParseBillsTXT parses `name;amount;day` lines.
func (p *Parser) ParseBillsTXT(data []byte) ([]models.Payment, error) {
	var rows [][]string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Split(line, ";"))
	}
	return p.fromRows(rows), nil
}
