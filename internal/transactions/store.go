package transactions

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed bodies or params. Nothing touches storage
	// once it is returned.
	ErrValidation = errors.New("validation failed")
	// ErrUnavailable marks a storage outage (connection refused, pool closed,
	// breaker open).
	ErrUnavailable = errors.New("storage unavailable")
)

// ValidationError carries the client-facing reason an input was rejected.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Filter is an equality predicate over the transactions table. Empty fields
// are not constrained; SessionID is always required by Repo.
type Filter struct {
	SessionID string
	ID        string
	Limit     int
}

// Store is the storage collaborator the service depends on.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Store
type Store interface {
	SelectWhere(ctx context.Context, f Filter) ([]Transaction, error)
	Insert(ctx context.Context, t Transaction) error
	// SumWhere returns nil when the aggregate is SQL NULL.
	SumWhere(ctx context.Context, f Filter) (*float64, error)
}
