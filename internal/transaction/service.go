package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	ListTransactions(ctx context.Context, r *Range) ([]*Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount   float64
	Type     Type
	Category string
	Note     string
	Date     *time.Time
}

// newTransaction validates params and builds a normalized record.
// A missing date is substituted with the current UTC instant; a supplied
// date is converted to UTC. Category and note pass through unvalidated.
func newTransaction(p CreateParams) (*Transaction, error) {
	if p.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	switch p.Type {
	case TypeIncome, TypeExpense:
	default:
		return nil, ErrInvalidType
	}

	date := time.Now().UTC()
	if p.Date != nil {
		date = p.Date.UTC()
	}

	return &Transaction{
		Amount:   p.Amount,
		Type:     p.Type,
		Category: p.Category,
		Note:     p.Note,
		Date:     date,
	}, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx, err := newTransaction(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch validates every row before persisting any of them, so a bad
// row rejects the whole batch.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))

	for i, p := range params {
		tx, err := newTransaction(p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		txs[i] = tx
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// List returns transactions, restricted to a calendar month when both
// month and year are supplied. With either one missing the listing is
// unbounded. Order is whatever the store returns.
func (s *Service) List(ctx context.Context, month *time.Month, year *int) ([]*Transaction, error) {
	var r *Range

	if month != nil && year != nil {
		mr := MonthRange(*year, *month)
		r = &mr
	}

	return s.repo.ListTransactions(ctx, r)
}

// Summarize aggregates income and expenses for one calendar month.
// Month and year default independently to the current UTC month/year, so
// the filter is always bounded.
func (s *Service) Summarize(ctx context.Context, month *time.Month, year *int) (*Summary, error) {
	now := time.Now().UTC()

	m := now.Month()
	if month != nil {
		m = *month
	}

	y := now.Year()
	if year != nil {
		y = *year
	}

	r := MonthRange(y, m)

	txs, err := s.repo.ListTransactions(ctx, &r)
	if err != nil {
		return nil, err
	}

	var income, expense decimal.Decimal

	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount)

		// Records with an unrecognized type are skipped rather than
		// failing the request; legacy data may carry arbitrary values.
		switch tx.Type {
		case TypeIncome:
			income = income.Add(amount)
		case TypeExpense:
			expense = expense.Add(amount)
		}
	}

	// Accumulation happens at full precision; rounding is applied only
	// here. The balance is derived from the rounded totals so that
	// balance == total_income - total_expense holds on the output.
	income = income.Round(2)
	expense = expense.Round(2)

	return &Summary{
		Month:        int(m),
		Year:         y,
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		Balance:      income.Sub(expense).InexactFloat64(),
	}, nil
}
