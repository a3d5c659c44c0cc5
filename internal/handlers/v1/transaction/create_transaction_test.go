package transaction

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func newCreateTestSetup(t *testing.T) (humatest.TestAPI, storage.Store, *operator.OperatorDelegator) {
	t.Helper()
	backend := storage.NewMemory()
	delegator := operator.NewOperatorDelegator(backend)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(delegator).Register(api)
	return api, backend, delegator
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	api, _, _ := newCreateTestSetup(t)

	resp := api.Post("/v1/transactions", CreateTransactionBody{
		Amount:   "not-a-number",
		Type:     "expense",
		Category: "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	api, _, _ := newCreateTestSetup(t)

	resp := api.Post("/v1/transactions", CreateTransactionBody{
		Amount:   "10",
		Type:     "expense",
		Category: "Food",
		Date:     "06/01/2026",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_NoActiveUser(t *testing.T) {
	api, _, _ := newCreateTestSetup(t)

	resp := api.Post("/v1/transactions", CreateTransactionBody{
		Amount:   "10",
		Type:     "expense",
		Category: "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_NegativeAmount(t *testing.T) {
	api, _, _ := newCreateTestSetup(t)

	resp := api.Post("/v1/transactions", CreateTransactionBody{
		Amount:   "-10",
		Type:     "expense",
		Category: "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateTransaction_Handle(t *testing.T) {
	_, backend, delegator := newCreateTestSetup(t)
	handler := NewCreateTransactionHandler(delegator)

	ctx := identity.WithUserID(context.Background(), "alice")
	output, err := handler.handle(ctx, &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:   "42.50",
			Type:     "expense",
			Category: "Food",
			Date:     "2026-06-01",
			Note:     "dinner",
		},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, output.Body.ID)
	assert.Equal(t, "42.5", output.Body.Amount)
	assert.Equal(t, "expense", output.Body.Type)
	assert.Equal(t, "2026-06-01", output.Body.Date)
	assert.Equal(t, "dinner", output.Body.Note)

	store, err := ledger.Open(context.Background(), backend, "alice")
	assert.NoError(t, err)
	assert.Len(t, store.List(nil), 1)
}

func TestCreateTransaction_HandleDefaultsDate(t *testing.T) {
	_, _, delegator := newCreateTestSetup(t)
	handler := NewCreateTransactionHandler(delegator)

	ctx := identity.WithUserID(context.Background(), "alice")
	output, err := handler.handle(ctx, &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:   "10",
			Type:     "income",
			Category: "Other",
		},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, output.Body.Date)
}
