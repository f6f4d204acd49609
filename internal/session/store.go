// Package session guarda a sessão do visitante entre requisições.
//
// Dois backends implementam Store: CookieStore, que assina a sessão inteira dentro do
// cookie, e RedisStore, em que o cookie carrega apenas um ID opaco.
package session

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain"
)

// DefaultTTL é a validade padrão da sessão (7 dias).
const DefaultTTL = 7 * 24 * time.Hour

// Store abre, grava e destrói sessões. Open nunca retorna sessão nil: sem cookie ou com
// cookie inválido, a sessão volta vazia (anônima).
type Store interface {
	Open(r *http.Request) (*domain.Session, error)
	Commit(ctx context.Context, s *domain.Session) (*http.Cookie, error)
	Destroy(ctx context.Context, s *domain.Session) (*http.Cookie, error)
}

// CookieOptions controla os atributos do cookie de sessão.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (o CookieOptions) withDefaults() CookieOptions {
	if o.Name == "" {
		o.Name = "__session"
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	return o
}

func (o CookieOptions) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     o.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(o.TTL.Seconds()),
		Expires:  time.Now().Add(o.TTL),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (o CookieOptions) expired() *http.Cookie {
	return &http.Cookie{
		Name:     o.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
