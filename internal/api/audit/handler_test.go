package audit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/api/audit"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

type MockEventLister struct {
	mock.Mock
}

func (m *MockEventLister) ListByUser(ctx context.Context, userID string, limit int) ([]domain.GateEvent, error) {
	args := m.Called(ctx, userID, limit)
	events, _ := args.Get(0).([]domain.GateEvent)
	return events, args.Error(1)
}

func TestListEventsHandler(t *testing.T) {
	lister := new(MockEventLister)
	h := audit.NewHandler(lister, logger.NewNop())
	lister.On("ListByUser", mock.Anything, "u1", 5).Return([]domain.GateEvent{
		{ID: "e1", UserID: "u1", Path: "/admin", Outcome: domain.OutcomeForbidden},
	}, nil)

	rr := httptest.NewRecorder()
	h.ListEventsHandler(rr, httptest.NewRequest(http.MethodGet, "/admin/gate-events?user_id=u1&limit=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var events []domain.GateEvent
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, domain.OutcomeForbidden, events[0].Outcome)
	lister.AssertExpectations(t)
}

func TestListEventsHandler_MissingUser(t *testing.T) {
	lister := new(MockEventLister)
	h := audit.NewHandler(lister, logger.NewNop())

	rr := httptest.NewRecorder()
	h.ListEventsHandler(rr, httptest.NewRequest(http.MethodGet, "/admin/gate-events", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	lister.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestListEventsHandler_DBError(t *testing.T) {
	lister := new(MockEventLister)
	h := audit.NewHandler(lister, logger.NewNop())
	lister.On("ListByUser", mock.Anything, "u1", 0).Return(nil, apperror.NewDBError("falha", assert.AnError))

	rr := httptest.NewRecorder()
	h.ListEventsHandler(rr, httptest.NewRequest(http.MethodGet, "/admin/gate-events?user_id=u1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
