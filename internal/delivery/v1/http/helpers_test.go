package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	v1Http "github.com/DRSN-tech/pos-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code int
	}{
		{e.ErrEmptyBill, http.StatusBadRequest},
		{e.ErrInvalidPrice, http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrSaleNotFound, http.StatusNotFound},
		{e.ErrDuplicateSKU, http.StatusConflict},
		{e.ErrInsufficientStock, http.StatusUnprocessableEntity},
		{e.NewInsufficientStockError("Milk", 5, 2), http.StatusUnprocessableEntity},
		{e.ErrRemoteService, http.StatusBadGateway},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := v1Http.ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.NotEmpty(t, msg)
	}

	// Обёртки не меняют статус
	code, _ := v1Http.ToHTTPResponse(e.Wrap("CheckoutUseCase.Checkout", e.ErrEmptyBill))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestWriteErrorInsufficientStockPayload(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	v1Http.WriteError(rec, e.Wrap("op", e.NewInsufficientStockError("Bread", 5, 1)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload struct {
		Code      int    `json:"code"`
		Message   string `json:"message"`
		Name      string `json:"name"`
		Required  int32  `json:"required"`
		Available int32  `json:"available"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Bread", payload.Name)
	assert.Equal(t, int32(5), payload.Required)
	assert.Equal(t, int32(1), payload.Available)
	assert.Contains(t, payload.Message, "Bread")
}
