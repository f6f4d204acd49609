package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/cache"
	"storefront/internal/pkg/logger"
)

const keyPrefix = "session:"

// RedisStore guarda a sessão no Redis; o cookie carrega apenas o ID (UUID).
type RedisStore struct {
	cache  cache.Client
	opts   CookieOptions
	logger logger.Logger
}

// NewRedisStore cria um store com estado no servidor.
func NewRedisStore(client cache.Client, opts CookieOptions, log logger.Logger) *RedisStore {
	return &RedisStore{cache: client, opts: opts.withDefaults(), logger: log}
}

func key(id string) string { return keyPrefix + id }

// Open busca a sessão pelo ID do cookie. ID desconhecido ou expirado resulta em sessão anônima;
// falha do Redis é devolvida como erro junto com uma sessão anônima.
func (s *RedisStore) Open(r *http.Request) (*domain.Session, error) {
	c, err := r.Cookie(s.opts.Name)
	if err != nil || c.Value == "" {
		return &domain.Session{}, nil
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return &domain.Session{}, nil
	}

	raw, err := s.cache.Get(r.Context(), key(c.Value))
	if errors.Is(err, cache.ErrCacheMiss) {
		return &domain.Session{}, nil
	}
	if err != nil {
		return &domain.Session{}, apperror.NewInternalError("Falha ao ler sessão do Redis.", err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("Sessão corrompida no Redis descartada.", map[string]interface{}{"session_id": c.Value})
		return &domain.Session{}, nil
	}
	sess.ID = c.Value
	return &sess, nil
}

// Commit grava a sessão (criando um ID na primeira vez) e renova o TTL.
func (s *RedisStore) Commit(ctx context.Context, sess *domain.Session) (*http.Cookie, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, apperror.NewInternalError("Falha ao serializar sessão.", err)
	}
	if err := s.cache.Set(ctx, key(sess.ID), payload, s.opts.TTL); err != nil {
		return nil, apperror.NewInternalError("Falha ao gravar sessão no Redis.", err)
	}
	return s.opts.cookie(sess.ID), nil
}

// Destroy remove a sessão do Redis e devolve um cookie expirado.
func (s *RedisStore) Destroy(ctx context.Context, sess *domain.Session) (*http.Cookie, error) {
	if sess.ID != "" {
		if err := s.cache.Delete(ctx, key(sess.ID)); err != nil {
			return nil, apperror.NewInternalError("Falha ao remover sessão do Redis.", err)
		}
	}
	*sess = domain.Session{}
	return s.opts.expired(), nil
}
