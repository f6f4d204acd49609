package page

import (
	"net/http"

	"storefront/internal/api/response"
	"storefront/internal/domain"
	"storefront/internal/pkg/logger"
	"storefront/internal/pkg/middleware"
	"storefront/internal/service/gateservice"
)

// View é o descritor JSON de uma página; a renderização fica com o cliente.
type View struct {
	Page   string         `json:"page"`
	UserID string         `json:"user_id,omitempty"`
	Stage  int            `json:"registration_stage,omitempty"`
	Role   domain.RoleTag `json:"role,omitempty"`
}

// Handler serve as páginas protegidas depois que o gate liberou a requisição.
type Handler struct {
	Logger logger.Logger
}

// NewHandler cria o Handler de páginas.
func NewHandler(log logger.Logger) *Handler {
	return &Handler{Logger: log}
}

// Page devolve o handler GET para a página com o nome dado.
func (h *Handler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w)
			return
		}

		sess := middleware.GetSession(r.Context())
		view := View{Page: name, UserID: sess.UserID, Stage: sess.RegistrationStage}

		// Papéis já resolvidos nesta requisição têm prioridade sobre os do cookie.
		if flags, ok := middleware.GetRequestCache(r.Context()).Roles(); ok {
			view.Role = gateservice.ClassifyRole(flags)
		} else if sess.CachedRoles != nil {
			view.Role = gateservice.ClassifyRole(*sess.CachedRoles)
		}

		response.JSON(w, h.Logger, http.StatusOK, view)
	}
}
