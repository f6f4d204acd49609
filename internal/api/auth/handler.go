package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/api/response"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
	"storefront/internal/pkg/middleware"
	"storefront/internal/service/authservice"
	"storefront/internal/session"
)

// AuthService define o contrato que o Handler espera da camada de Serviço.
type AuthService interface {
	Login(ctx context.Context, credentials domain.Credentials) (authservice.LoginOutcome, error)
}

// LoginResponse é o corpo devolvido após o login.
type LoginResponse struct {
	UserID string         `json:"user_id"`
	Role   domain.RoleTag `json:"role"`
	Next   string         `json:"next,omitempty"`
}

// Handler agrupa os handlers de login e logout.
type Handler struct {
	Service AuthService
	Store   session.Store
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service, o Store e o Logger.
func NewHandler(svc AuthService, store session.Store, log logger.Logger) *Handler {
	return &Handler{Service: svc, Store: store, Logger: log}
}

// LoginHandler lida com a requisição POST /login.
// @Summary Autentica o visitante e abre a sessão
// @Description Envia as credenciais ao serviço de contas e grava user_id, estágio e papéis no cookie de sessão.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Email e senha"
// @Success 200 {object} LoginResponse "Sessão criada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 502 {object} domain.ErrorResponse "Serviço de contas indisponível"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.MethodNotAllowed(w)
		return
	}

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		response.Error(w, r, h.Logger, apperror.NewValidationError("Payload JSON inválido."))
		return
	}

	out, err := h.Service.Login(r.Context(), creds)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	// Preserva o ID de sessão existente (RedisStore) para não deixar chaves órfãs.
	sess := middleware.GetSession(r.Context())
	out.Session.ID = sess.ID
	*sess = out.Session

	cookie, err := h.Store.Commit(r.Context(), sess)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	http.SetCookie(w, cookie)

	response.JSON(w, h.Logger, http.StatusOK, LoginResponse{UserID: sess.UserID, Role: out.Role, Next: out.Next})
}

// LogoutHandler lida com a requisição POST /logout.
// @Summary Encerra a sessão
// @Tags auth
// @Success 204 "Sessão destruída"
// @Router /logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.MethodNotAllowed(w)
		return
	}

	cookie, err := h.Store.Destroy(r.Context(), middleware.GetSession(r.Context()))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusNoContent)
}
