package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/api/order"
	"storefront/internal/domain"
	"storefront/internal/pkg/logger"
	"storefront/internal/service/orderservice"
)

func TestGetStatusViewHandler(t *testing.T) {
	h := order.NewHandler(orderservice.NewService(), logger.NewNop())

	rr := httptest.NewRecorder()
	h.GetStatusViewHandler(rr, httptest.NewRequest(http.MethodGet, "/v1/orders/view?status=Delivered", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var view domain.OrderView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, domain.OrderDelivered, view.Status)
	assert.Equal(t, domain.ViewDelivered, view.Variant)
}

func TestGetStatusViewHandler_Errors(t *testing.T) {
	h := order.NewHandler(orderservice.NewService(), logger.NewNop())

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"sem status", http.MethodGet, "/v1/orders/view", http.StatusBadRequest},
		{"status desconhecido", http.MethodGet, "/v1/orders/view?status=lost", http.StatusBadRequest},
		{"método errado", http.MethodPost, "/v1/orders/view?status=pending", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.GetStatusViewHandler(rr, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
