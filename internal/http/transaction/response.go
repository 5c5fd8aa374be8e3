package transaction

import (
	"time"

	"github.com/jmcortinhal/centavo/internal/transaction"
)

type transactionResponse struct {
	ID       string           `json:"id"`
	Amount   float64          `json:"amount"`
	Type     transaction.Type `json:"type"`
	Category string           `json:"category"`
	Note     string           `json:"note,omitempty"`
	Date     time.Time        `json:"date"`
}

type listResponse struct {
	Items []transactionResponse `json:"items"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:       tx.ID,
		Amount:   tx.Amount,
		Type:     tx.Type,
		Category: tx.Category,
		Note:     tx.Note,
		Date:     tx.Date,
	}
}

func toListResponse(txs []*transaction.Transaction) listResponse {
	items := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		items[i] = toResponse(tx)
	}

	return listResponse{Items: items}
}
