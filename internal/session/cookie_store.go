package session

import (
	"context"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/pkg/logger"
)

// Codec serializa a sessão no valor do cookie (implementado por token.Service).
type Codec interface {
	Encode(sess domain.Session) (string, error)
	Decode(value string) (domain.Session, error)
}

// CookieStore guarda a sessão inteira no cookie, assinada pelo Codec.
type CookieStore struct {
	codec  Codec
	opts   CookieOptions
	logger logger.Logger
}

// NewCookieStore cria um store baseado apenas no cookie.
func NewCookieStore(codec Codec, opts CookieOptions, log logger.Logger) *CookieStore {
	return &CookieStore{codec: codec, opts: opts.withDefaults(), logger: log}
}

// Open lê e valida o cookie. Cookie adulterado ou expirado resulta em sessão anônima.
func (s *CookieStore) Open(r *http.Request) (*domain.Session, error) {
	c, err := r.Cookie(s.opts.Name)
	if err != nil || c.Value == "" {
		return &domain.Session{}, nil
	}

	sess, err := s.codec.Decode(c.Value)
	if err != nil {
		s.logger.Debug("Cookie de sessão descartado.", map[string]interface{}{"reason": err.Error()})
		return &domain.Session{}, nil
	}
	return &sess, nil
}

// Commit serializa a sessão e devolve o Set-Cookie correspondente.
func (s *CookieStore) Commit(_ context.Context, sess *domain.Session) (*http.Cookie, error) {
	value, err := s.codec.Encode(*sess)
	if err != nil {
		return nil, err
	}
	return s.opts.cookie(value), nil
}

// Destroy devolve um cookie expirado; não há estado no servidor.
func (s *CookieStore) Destroy(_ context.Context, sess *domain.Session) (*http.Cookie, error) {
	*sess = domain.Session{}
	return s.opts.expired(), nil
}
