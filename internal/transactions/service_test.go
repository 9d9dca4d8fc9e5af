package transactions_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions"
	"github.com/ishantswami13-crypto/vantro-ledger/internal/transactions/mocks"
)

const (
	sessionA = "6f1c2a34-1111-4c8e-9a55-000000000001"
	txnID    = "0b9d2f7e-5a53-4f5c-8f0e-6a3a1f3b2c10"
)

func ptr(f float64) *float64 { return &f }

func newService(t *testing.T) (*transactions.Service, *mocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	svc := transactions.NewService(store)
	svc.NewID = func() string { return txnID }
	return svc, store
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        transactions.CreateRequest
		wantAmount float64
		wantErr    error
	}{
		{
			name:       "credit keeps amount",
			req:        transactions.CreateRequest{Title: "Salary", Amount: ptr(5000), Type: transactions.Credit},
			wantAmount: 5000,
		},
		{
			name:       "debit is negated",
			req:        transactions.CreateRequest{Title: "Rent", Amount: ptr(1200), Type: transactions.Debit},
			wantAmount: -1200,
		},
		{
			name:       "debit with negative input stays negative",
			req:        transactions.CreateRequest{Title: "Refund gone wrong", Amount: ptr(-30), Type: transactions.Debit},
			wantAmount: -30,
		},
		{
			name:       "credit preserves client sign",
			req:        transactions.CreateRequest{Title: "Chargeback", Amount: ptr(-15.5), Type: transactions.Credit},
			wantAmount: -15.5,
		},
		{
			name:    "empty title",
			req:     transactions.CreateRequest{Title: "", Amount: ptr(10), Type: transactions.Credit},
			wantErr: transactions.ErrValidation,
		},
		{
			name:    "missing amount",
			req:     transactions.CreateRequest{Title: "Coffee", Type: transactions.Debit},
			wantErr: transactions.ErrValidation,
		},
		{
			name:    "unknown type",
			req:     transactions.CreateRequest{Title: "Coffee", Amount: ptr(3), Type: "transfer"},
			wantErr: transactions.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService(t)

			if tt.wantErr == nil {
				store.EXPECT().Insert(gomock.Any(), transactions.Transaction{
					ID:        txnID,
					Title:     tt.req.Title,
					Amount:    tt.wantAmount,
					SessionID: sessionA,
				}).Return(nil)
			}

			err := svc.Create(context.Background(), sessionA, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_CreatePropagatesStoreError(t *testing.T) {
	svc, store := newService(t)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(transactions.ErrUnavailable)

	err := svc.Create(context.Background(), sessionA, transactions.CreateRequest{
		Title: "Salary", Amount: ptr(1), Type: transactions.Credit,
	})
	assert.ErrorIs(t, err, transactions.ErrUnavailable)
}

func TestService_List(t *testing.T) {
	t.Run("returns rows for the session", func(t *testing.T) {
		svc, store := newService(t)
		rows := []transactions.Transaction{
			{ID: txnID, Title: "Salary", Amount: 5000, SessionID: sessionA},
		}
		store.EXPECT().SelectWhere(gomock.Any(), transactions.Filter{SessionID: sessionA}).Return(rows, nil)

		got, err := svc.List(context.Background(), sessionA)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("nil from store becomes empty slice", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().SelectWhere(gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := svc.List(context.Background(), sessionA)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().SelectWhere(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.List(context.Background(), sessionA)
		assert.EqualError(t, err, "boom")
	})
}

func TestService_Get(t *testing.T) {
	t.Run("invalid uuid never reaches storage", func(t *testing.T) {
		svc, _ := newService(t)

		got, err := svc.Get(context.Background(), sessionA, "not-a-uuid")
		assert.ErrorIs(t, err, transactions.ErrValidation)
		var vErr *transactions.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "id must be a valid uuid", vErr.Msg)
		assert.Nil(t, got)
	})

	t.Run("filters by id and session", func(t *testing.T) {
		svc, store := newService(t)
		row := transactions.Transaction{ID: txnID, Title: "Salary", Amount: 5000, SessionID: sessionA}
		store.EXPECT().
			SelectWhere(gomock.Any(), transactions.Filter{SessionID: sessionA, ID: txnID, Limit: 1}).
			Return([]transactions.Transaction{row}, nil)

		got, err := svc.Get(context.Background(), sessionA, txnID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, row, *got)
	})

	t.Run("uppercase id is normalized", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().
			SelectWhere(gomock.Any(), transactions.Filter{SessionID: sessionA, ID: txnID, Limit: 1}).
			Return([]transactions.Transaction{{ID: txnID, SessionID: sessionA}}, nil)

		got, err := svc.Get(context.Background(), sessionA, strings.ToUpper(txnID))
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().SelectWhere(gomock.Any(), gomock.Any()).Return([]transactions.Transaction{}, nil)

		got, err := svc.Get(context.Background(), sessionA, txnID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestService_Summary(t *testing.T) {
	t.Run("null sum normalizes to zero", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().SumWhere(gomock.Any(), transactions.Filter{SessionID: sessionA}).Return(nil, nil)

		got, err := svc.Summary(context.Background(), sessionA)
		require.NoError(t, err)
		assert.Equal(t, transactions.Summary{Amount: 0}, got)
	})

	t.Run("returns the stored sum", func(t *testing.T) {
		svc, store := newService(t)
		store.EXPECT().SumWhere(gomock.Any(), gomock.Any()).Return(ptr(3800), nil)

		got, err := svc.Summary(context.Background(), sessionA)
		require.NoError(t, err)
		assert.Equal(t, 3800.0, got.Amount)
	})
}

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, 10.0, transactions.SignedAmount(transactions.Credit, 10))
	assert.Equal(t, -10.0, transactions.SignedAmount(transactions.Credit, -10))
	assert.Equal(t, -10.0, transactions.SignedAmount(transactions.Debit, 10))
	assert.Equal(t, -10.0, transactions.SignedAmount(transactions.Debit, -10))
}
