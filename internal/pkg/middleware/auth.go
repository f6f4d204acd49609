package middleware

import (
	"context"
	"net/http"

	"storefront/internal/api/response"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
	"storefront/internal/service/gateservice"
	"storefront/internal/session"
)

// ContextKey é o tipo das chaves usadas para anexar dados da requisição ao contexto.
// Usamos um tipo próprio para não haver conflito com chaves de outros pacotes.
type ContextKey int

const (
	SessionKey ContextKey = iota
	RequestCacheKey
	RequestIDKey
)

// NewSessionMiddleware abre a sessão do visitante e cria o cache da requisição,
// anexando ambos ao contexto. Falha no store não bloqueia: segue com sessão anônima.
func NewSessionMiddleware(store session.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Open(r)
			if err != nil {
				log.Warn("Falha ao abrir sessão; seguindo como anônimo.", map[string]interface{}{"error": err.Error(), "path": r.URL.Path})
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			ctx = context.WithValue(ctx, RequestCacheKey, gateservice.NewRequestCache())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extrai a sessão do contexto. Sem o middleware de sessão, retorna uma sessão anônima.
func GetSession(ctx context.Context) *domain.Session {
	if sess, ok := ctx.Value(SessionKey).(*domain.Session); ok && sess != nil {
		return sess
	}
	return &domain.Session{}
}

// GetRequestCache extrai o cache da requisição. Sem o middleware de sessão, retorna um cache novo.
func GetRequestCache(ctx context.Context) *gateservice.RequestCache {
	if c, ok := ctx.Value(RequestCacheKey).(*gateservice.RequestCache); ok && c != nil {
		return c
	}
	return gateservice.NewRequestCache()
}

// RequireSession exige um usuário logado; caso contrário responde 401.
func RequireSession(log logger.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !GetSession(r.Context()).IsAuthenticated() {
				response.Error(w, r, log, apperror.NewUnauthorizedError("Login necessário."))
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}
