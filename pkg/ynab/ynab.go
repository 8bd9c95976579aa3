package ynab

import (
	"errors"
	"fmt"

	"github.com/brunomvsouza/ynab.go"
	"github.com/brunomvsouza/ynab.go/api/account"
	"github.com/shopspring/decimal"
)

// ErrMissingToken is returned when no API token is configured.
var ErrMissingToken = errors.New("missing YNAB token")

// milliunits is the exponent YNAB amounts are expressed in.
const milliunits = -3

// accountGetter is the slice of the YNAB account API that we use.
type accountGetter interface {
	GetAccount(budgetID, accountID string) (*account.Account, error)
}

// YNABClient wraps the YNAB client to read account balances as decimals.
type YNABClient struct {
	accounts accountGetter
}

// New creates a client authenticated with token.
func New(token string) (*YNABClient, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	return &YNABClient{accounts: ynab.NewClient(token).Account()}, nil
}

// Account is the part of a YNAB account a projection needs.
type Account struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// GetAccount fetches an account and converts its balance from milliunits.
func (c *YNABClient) GetAccount(budgetID, accountID string) (*Account, error) {
	acc, err := c.accounts.GetAccount(budgetID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}
	if acc.Closed {
		return nil, fmt.Errorf("account %s is closed", acc.Name)
	}
	return &Account{
		ID:      acc.ID,
		Name:    acc.Name,
		Balance: FromMilliunits(acc.Balance),
	}, nil
}

// FromMilliunits converts a YNAB amount into a decimal currency value.
func FromMilliunits(v int64) decimal.Decimal {
	return decimal.New(v, milliunits)
}
