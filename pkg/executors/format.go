package executors

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
)

// FormatMoney renders an amount rounded to two places with a currency
// symbol, e.g. £12.30 or -£200.00.
func FormatMoney(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// renderBalance colours a balance by sign.
func renderBalance(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return negativeStyle.Render(FormatMoney(symbol, d))
	}
	return positiveStyle.Render(FormatMoney(symbol, d))
}
