package transactions

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the PostgreSQL Store.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) SelectWhere(ctx context.Context, f Filter) ([]Transaction, error) {
	where, args, err := buildWhere(f)
	if err != nil {
		return nil, err
	}

	q := `SELECT id::text, title, amount::float8, session_id, created_at
		 FROM transactions
		 WHERE ` + where + `
		 ORDER BY created_at ASC, id ASC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *Repo) Insert(ctx context.Context, t Transaction) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO transactions (id, title, amount, session_id)
		 VALUES ($1::uuid, $2, $3, $4)`,
		t.ID, t.Title, t.Amount, t.SessionID,
	)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (r *Repo) SumWhere(ctx context.Context, f Filter) (*float64, error) {
	where, args, err := buildWhere(f)
	if err != nil {
		return nil, err
	}

	var sum *float64
	err = r.Pool.QueryRow(ctx,
		`SELECT SUM(amount)::float8 FROM transactions WHERE `+where,
		args...,
	).Scan(&sum)
	if err != nil {
		return nil, classify(err)
	}
	return sum, nil
}

// buildWhere turns a Filter into an AND-ed equality clause with $n placeholders.
func buildWhere(f Filter) (string, []any, error) {
	if strings.TrimSpace(f.SessionID) == "" {
		return "", nil, errors.New("filter: session id required")
	}

	clauses := []string{"session_id = $1"}
	args := []any{f.SessionID}

	if f.ID != "" {
		args = append(args, f.ID)
		clauses = append(clauses, fmt.Sprintf("id = $%d::uuid", len(args)))
	}

	return strings.Join(clauses, " AND "), args, nil
}

// classify wraps connection-class failures with ErrUnavailable and leaves
// query errors untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		pgconn.SafeToRetry(err),
		pgconn.Timeout(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if strings.Contains(err.Error(), "closed pool") {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
