package transactions

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Service holds the four ledger operations. Every call is scoped to the
// caller's session id; resolving that id is the HTTP layer's job.
type Service struct {
	Store Store
	NewID func() string
}

func NewService(store Store) *Service {
	return &Service{
		Store: store,
		NewID: func() string { return uuid.NewString() },
	}
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Transaction, error) {
	items, err := s.Store.SelectWhere(ctx, Filter{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]Transaction, 0)
	}
	return items, nil
}

// Get returns nil, nil when no transaction with that id belongs to the session.
// The id is matched case-insensitively.
func (s *Service) Get(ctx context.Context, sessionID, id string) (*Transaction, error) {
	id = strings.ToLower(id)
	if err := validateStruct(getParams{ID: id}); err != nil {
		return nil, err
	}

	items, err := s.Store.SelectWhere(ctx, Filter{SessionID: sessionID, ID: id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (s *Service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	sum, err := s.Store.SumWhere(ctx, Filter{SessionID: sessionID})
	if err != nil {
		return Summary{}, err
	}
	if sum == nil {
		return Summary{Amount: 0}, nil
	}
	return Summary{Amount: *sum}, nil
}

func (s *Service) Create(ctx context.Context, sessionID string, req CreateRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if sessionID == "" {
		return errors.New("create: session id required")
	}

	return s.Store.Insert(ctx, Transaction{
		ID:        s.NewID(),
		Title:     req.Title,
		Amount:    SignedAmount(req.Type, *req.Amount),
		SessionID: sessionID,
	})
}

// SignedAmount applies the direction of t to amount. Credits keep the sign the
// client sent; debits are always stored negative.
func SignedAmount(t Type, amount float64) float64 {
	if t == Debit {
		return -math.Abs(amount)
	}
	return amount
}
