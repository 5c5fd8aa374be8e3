package transaction

import (
	"errors"
	"time"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Input errors surfaced to API clients as 400s.
var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidType   = errors.New("type must be 'income' or 'expense'")
)

// Transaction represents a single income or expense record.
type Transaction struct {
	ID       string // assigned by the store on insert
	Amount   float64
	Type     Type
	Category string
	Note     string
	Date     time.Time // always UTC
}

// Summary holds aggregated totals for one calendar month.
// TotalIncome and TotalExpense are rounded to 2 decimal places and
// Balance is their exact difference.
type Summary struct {
	Month        int
	Year         int
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}
