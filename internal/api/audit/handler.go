package audit

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/api/response"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

// EventLister define a consulta de eventos do gate (implementada por auditrepo).
type EventLister interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.GateEvent, error)
}

// Handler expõe a auditoria do gate para administradores.
type Handler struct {
	Events EventLister
	Logger logger.Logger
}

// NewHandler cria o Handler de auditoria.
func NewHandler(events EventLister, log logger.Logger) *Handler {
	return &Handler{Events: events, Logger: log}
}

// ListEventsHandler lida com a requisição GET /admin/gate-events?user_id=&limit=.
// @Summary Lista as decisões recentes do gate para um usuário
// @Tags admin
// @Produce json
// @Param user_id query string true "ID do usuário"
// @Param limit query int false "Máximo de eventos (padrão 20)"
// @Success 200 {array} domain.GateEvent
// @Failure 400 {object} domain.ErrorResponse "user_id ausente"
// @Failure 403 {object} domain.ErrorResponse "Apenas administradores"
// @Router /admin/gate-events [get]
func (h *Handler) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.Error(w, r, h.Logger, apperror.NewValidationError("O parâmetro user_id é obrigatório."))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.Events.ListByUser(r.Context(), userID, limit)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, events)
}
