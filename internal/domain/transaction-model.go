package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "Success"
	TransactionFailed  TransactionStatus = "Failed"
)

type Transaction struct {
	ID       string            `json:"id"`
	Receiver string            `json:"receiver"`
	Amount   decimal.Decimal   `json:"amount"`
	Status   TransactionStatus `json:"status"`
	At       time.Time         `json:"at"`
}

// RewardSummary aggregates successful payments to one receiver.
type RewardSummary struct {
	Receiver string          `json:"receiver"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
	Points   int             `json:"points"`
	Discount decimal.Decimal `json:"discount"`
}

const CategoryOthers = "Others"

// merchantCategories maps known campus merchants, keyed in lower case.
var merchantCategories = map[string]string{
	"zuzu":       "Food",
	"bitsnbites": "Food",
	"kepler":     "Stationery",
	"viza":       "Stationery",
}

// CategoryFor returns the spending category of a receiver, Others when unknown.
func CategoryFor(receiver string) string {
	if c, ok := merchantCategories[strings.ToLower(strings.TrimSpace(receiver))]; ok {
		return c
	}
	return CategoryOthers
}

type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type SpendingSummary struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Categories   []CategorySpend `json:"categories"`
}
