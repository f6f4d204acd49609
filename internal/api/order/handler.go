package order

import (
	"net/http"

	"storefront/internal/api/response"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

// OrderService define o contrato que o Handler espera da camada de Serviço.
type OrderService interface {
	ViewFor(status string) (domain.OrderView, error)
}

// Handler agrupa os handlers de pedido.
type Handler struct {
	Service OrderService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc OrderService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetStatusViewHandler lida com a requisição GET /v1/orders/view?status=.
// @Summary Escolhe o cartão de status do pedido
// @Tags orders
// @Produce json
// @Param status query string true "Status do pedido (pending, processing, shipping, delivered, completed, cancelled, dispute, return, rating)"
// @Success 200 {object} domain.OrderView "Visão do status"
// @Failure 400 {object} domain.ErrorResponse "Status desconhecido"
// @Failure 403 {object} domain.ErrorResponse "Apenas clientes"
// @Router /v1/orders/view [get]
func (h *Handler) GetStatusViewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		response.Error(w, r, h.Logger, apperror.NewValidationError("O parâmetro status é obrigatório."))
		return
	}

	view, err := h.Service.ViewFor(status)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, view)
}
