package transactions

import "time"

// Type is the direction of a transaction as supplied by the client.
type Type string

const (
	Credit Type = "credit"
	Debit  Type = "debit"
)

// Transaction is a single signed movement owned by one session.
type Transaction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"` // positive = credit, negative = debit
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequest struct {
	Title  string   `json:"title" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
	Type   Type     `json:"type" validate:"required,oneof=credit debit"`
}

type getParams struct {
	ID string `validate:"required,uuid"`
}

type Summary struct {
	Amount float64 `json:"amount"`
}

type listResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// getResponse omits the key entirely when nothing matched.
type getResponse struct {
	Transaction *Transaction `json:"transaction,omitempty"`
}

type summaryResponse struct {
	Summary Summary `json:"summary"`
}
