//go:build integration

package transactions_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/database"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions"
)

// setupPostgres starts a disposable PostgreSQL container with the schema
// migrated and returns a pool connected to it.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, "../../migrations", false))
	require.NoError(t, db.Close())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestIntegration_RepoLedgerScenario(t *testing.T) {
	pool := setupPostgres(t)
	svc := transactions.NewService(transactions.NewRepo(pool))
	ctx := context.Background()

	session := uuid.NewString()
	other := uuid.NewString()

	require.NoError(t, svc.Create(ctx, session, transactions.CreateRequest{
		Title: "Salary", Amount: ptr(5000), Type: transactions.Credit,
	}))
	require.NoError(t, svc.Create(ctx, session, transactions.CreateRequest{
		Title: "Rent", Amount: ptr(1200), Type: transactions.Debit,
	}))
	require.NoError(t, svc.Create(ctx, other, transactions.CreateRequest{
		Title: "Other", Amount: ptr(1), Type: transactions.Credit,
	}))

	items, err := svc.List(ctx, session)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Salary", items[0].Title)
	assert.Equal(t, 5000.0, items[0].Amount)
	assert.Equal(t, -1200.0, items[1].Amount)
	for _, it := range items {
		assert.Equal(t, session, it.SessionID)
		assert.False(t, it.CreatedAt.IsZero())
	}

	sum, err := svc.Summary(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, 3800.0, sum.Amount)

	got, err := svc.Get(ctx, session, items[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Rent", got.Title)

	got, err = svc.Get(ctx, other, items[1].ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty, err := svc.Summary(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Amount)
}

func TestIntegration_RepoKeepsSubCentAndLargeAmounts(t *testing.T) {
	pool := setupPostgres(t)
	svc := transactions.NewService(transactions.NewRepo(pool))
	ctx := context.Background()

	session := uuid.NewString()
	for _, req := range []transactions.CreateRequest{
		{Title: "tiny credit", Amount: ptr(0.001), Type: transactions.Credit},
		{Title: "tiny debit", Amount: ptr(0.004), Type: transactions.Debit},
		{Title: "huge credit", Amount: ptr(5e12), Type: transactions.Credit},
	} {
		require.NoError(t, svc.Create(ctx, session, req))
	}

	items, err := svc.List(ctx, session)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 0.001, items[0].Amount)
	assert.Equal(t, -0.004, items[1].Amount)
	assert.Equal(t, 5e12, items[2].Amount)

	sub := uuid.NewString()
	require.NoError(t, svc.Create(ctx, sub, transactions.CreateRequest{
		Title: "tiny credit", Amount: ptr(0.001), Type: transactions.Credit,
	}))
	sum, err := svc.Summary(ctx, sub)
	require.NoError(t, err)
	assert.Greater(t, sum.Amount, 0.0)
}

func TestIntegration_RepoClosedPoolIsUnavailable(t *testing.T) {
	pool := setupPostgres(t)
	repo := transactions.NewRepo(pool)
	pool.Close()

	_, err := repo.SelectWhere(context.Background(), transactions.Filter{SessionID: "s"})
	assert.ErrorIs(t, err, transactions.ErrUnavailable)
}
