package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/fin_statements_app/internal/adapters/httpclient"
	"github.com/finbooks/fin_statements_app/internal/apperrors"
	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

func TestTransactionStoreList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/transactions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2024-01-10","description":"Product sales","amount":1500.50,"category":"Revenue","type":"credit"},
			{"date":"2024-01-11","description":"String amount","amount":"250","category":"Purchases","type":"debit"},
			{"date":"2024-01-12","description":"Broken amount","amount":"not-a-number","category":"Revenue","type":"credit"},
			{"date":"2024-01-13","description":"Missing amount","category":"Revenue","type":"credit"}
		]`))
	}))
	defer server.Close()

	store := httpclient.NewTransactionStore(server.URL, time.Second)
	txns, err := store.List(context.Background())

	require.NoError(t, err)
	require.Len(t, txns, 4)

	require.True(t, txns[0].Amount.Valid)
	assert.True(t, txns[0].Amount.Decimal.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, domain.CreditTxn, txns[0].Type)

	// Numeric strings parse too.
	require.True(t, txns[1].Amount.Valid)
	assert.True(t, txns[1].Amount.Decimal.Equal(decimal.NewFromInt(250)))

	// A bad amount marks only its own record invalid.
	assert.False(t, txns[2].Amount.Valid)
	assert.Equal(t, "Broken amount", txns[2].Description)
	assert.False(t, txns[3].Amount.Valid)
}

func TestTransactionStoreList_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := httpclient.NewTransactionStore(server.URL, time.Second)
	_, err := store.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestTransactionStoreList_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	store := httpclient.NewTransactionStore(server.URL, time.Second)
	_, err := store.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestTransactionStoreCreate(t *testing.T) {
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	store := httpclient.NewTransactionStore(server.URL, time.Second)
	err := store.Create(context.Background(), domain.RawTransaction{
		Date:        "2024-02-01",
		Description: "Office chairs",
		Amount:      decimal.NewNullDecimal(decimal.NewFromInt(420)),
		Category:    "Operating Expenses",
		Type:        domain.DebitTxn,
	})

	require.NoError(t, err)
	assert.Contains(t, string(received), "Office chairs")
}

func TestTransactionStoreCreate_RejectsInvalidRecord(t *testing.T) {
	store := httpclient.NewTransactionStore("http://localhost:0", time.Second)
	err := store.Create(context.Background(), domain.RawTransaction{Description: "No amount"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
