package models

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Payment is a bill that recurs once a month on a fixed day.
type Payment struct {
	Name    string
	Amount  decimal.Decimal
	DayPaid int
}

// NewPayment builds a Payment from its parts.
func NewPayment(name string, amount decimal.Decimal, dayPaid int) Payment {
	return Payment{Name: name, Amount: amount, DayPaid: dayPaid}
}

// paymentYAML mirrors the on-disk shape. The amount is kept as a raw node so
// that both `amount: 12.50` and `amount: "12.50"` are accepted.
type paymentYAML struct {
	Name    string    `yaml:"name"`
	Amount  yaml.Node `yaml:"amount"`
	DayPaid int       `yaml:"day_paid"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Payment) UnmarshalYAML(value *yaml.Node) error {
	var raw paymentYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	amount := decimal.Zero
	if raw.Amount.Value != "" {
		d, err := decimal.NewFromString(raw.Amount.Value)
		if err != nil {
			return fmt.Errorf("payment %q: invalid amount %q: %w", raw.Name, raw.Amount.Value, err)
		}
		amount = d
	}

	*p = Payment{Name: raw.Name, Amount: amount, DayPaid: raw.DayPaid}
	return nil
}

// MarshalYAML implements yaml.Marshaler. Amounts are written as plain
// scalars so the file stays easy to edit by hand.
func (p Payment) MarshalYAML() (interface{}, error) {
	return paymentYAML{
		Name:    p.Name,
		Amount:  yaml.Node{Kind: yaml.ScalarNode, Value: p.Amount.String()},
		DayPaid: p.DayPaid,
	}, nil
}

// String renders the payment the way `list` shows a single bill.
func (p Payment) String() string {
	return fmt.Sprintf("Bill: %s\nAmount: %s\nDay paid: %d", p.Name, p.Amount.String(), p.DayPaid)
}

// Row returns the payment as name, amount and day columns.
func (p Payment) Row() []string {
	return []string{p.Name, p.Amount.String(), strconv.Itoa(p.DayPaid)}
}
