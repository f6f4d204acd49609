package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "storefront/docs" // registra a especificação swagger
	"storefront/internal/api/audit"
	"storefront/internal/api/auth"
	"storefront/internal/api/order"
	"storefront/internal/api/page"
	"storefront/internal/domain"
	"storefront/internal/pkg/cache"
	"storefront/internal/pkg/logger"
	"storefront/internal/pkg/middleware"
	"storefront/internal/session"
)

// Handlers agrupa os handlers já inicializados no main.
// Audit é opcional: sem banco configurado a rota /admin/gate-events não é registrada.
type Handlers struct {
	Auth  *auth.Handler
	Page  *page.Handler
	Order *order.Handler
	Audit *audit.Handler
}

// RateLimit configura o limitador global.
type RateLimit struct {
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers e o Gate já inicializados por injeção de dependências.
func NewRouter(h Handlers, gate *middleware.Gate, store session.Store, cacheClient cache.Client, limit RateLimit, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	requireSession := middleware.RequireSession(log)

	// --- 1. Health Check e documentação ---
	mux.HandleFunc("/ping", PingHandler)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// --- 2. Autenticação ---
	mux.HandleFunc("/login", h.Auth.LoginHandler)
	mux.HandleFunc("/logout", h.Auth.LogoutHandler)

	// --- 3. Fluxo de cadastro: sessão + gate de cadastro ---
	for _, path := range []string{domain.PathHome, domain.PathSignup, domain.PathProfiling, domain.PathNumber} {
		mux.HandleFunc(path, chain(h.Page.Page(path), requireSession, gate.Registration()))
	}

	// --- 4. Páginas por papel ---
	mux.HandleFunc("/customer", chain(h.Page.Page("/customer"), requireSession, gate.Roles(domain.RoleCustomer)))
	mux.HandleFunc("/rider", chain(h.Page.Page("/rider"), requireSession, gate.Roles(domain.RoleRider), gate.Rider()))
	mux.HandleFunc(domain.PathPending, chain(h.Page.Page(domain.PathPending), requireSession, gate.Roles(domain.RoleRider)))
	mux.HandleFunc("/moderator", chain(h.Page.Page("/moderator"), requireSession, gate.Roles(domain.RoleModerator)))
	mux.HandleFunc("/admin", chain(h.Page.Page("/admin"), requireSession, gate.Roles(domain.RoleAdmin)))

	// --- 5. Pedidos (v1) ---
	mux.HandleFunc("/v1/orders/view", chain(h.Order.GetStatusViewHandler, requireSession, gate.Roles(domain.RoleCustomer)))

	// --- 6. Auditoria (apenas com banco configurado) ---
	if h.Audit != nil {
		mux.HandleFunc("/admin/gate-events", chain(h.Audit.ListEventsHandler, requireSession, gate.Roles(domain.RoleAdmin)))
	}

	// --- 7. Middlewares globais (o primeiro da lista é o mais externo) ---
	var handler http.Handler = mux
	handler = middleware.NewSessionMiddleware(store, log)(handler)
	handler = middleware.RateLimiter(cacheClient, limit.MaxRequests, limit.Period, log)(handler)
	handler = middleware.AccessLog(log)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// chain aplica os middlewares na ordem dada: o primeiro roda antes dos demais.
func chain(h http.HandlerFunc, mws ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
