package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/api/response"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
	"storefront/internal/service/gateservice"
	"storefront/internal/session"
)

// GateService é o contrato do gate consumido pelos middlewares (implementado por gateservice.Service).
type GateService interface {
	ResolveRegistrationRedirect(ctx context.Context, sess *domain.Session) domain.Destination
	ResolveRoleAccess(ctx context.Context, sess *domain.Session, cache *gateservice.RequestCache, allowed domain.RoleSet) (domain.RoleFlags, error)
	ResolveRiderVerification(ctx context.Context, sess *domain.Session) domain.Destination
}

// AuditRecorder recebe as decisões do gate (implementado por auditrepo).
type AuditRecorder interface {
	Record(ctx context.Context, event domain.GateEvent) error
}

const auditTimeout = 2 * time.Second

// Gate monta os middlewares por rota. A ordem de uso numa rota protegida é
// Registration -> Roles -> Rider.
type Gate struct {
	svc    GateService
	store  session.Store
	audit  AuditRecorder
	logger logger.Logger
}

// NewGate cria o conjunto de middlewares do gate.
func NewGate(svc GateService, store session.Store, audit AuditRecorder, log logger.Logger) *Gate {
	return &Gate{svc: svc, store: store, audit: audit, logger: log}
}

// Registration redireciona o visitante para o próximo passo do cadastro. Se ele já está
// na página de destino, a requisição segue.
func (g *Gate) Registration() func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			dest := g.svc.ResolveRegistrationRedirect(r.Context(), sess)
			if g.redirect(w, r, sess, dest, "registration") {
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// Roles exige que o usuário tenha pelo menos um dos papéis. Em caso de sucesso, as flags
// são guardadas na sessão (cookie regravado apenas se mudaram).
func (g *Gate) Roles(allowed ...domain.Role) func(next http.HandlerFunc) http.HandlerFunc {
	set := domain.RoleSet(allowed)
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			flags, err := g.svc.ResolveRoleAccess(r.Context(), sess, GetRequestCache(r.Context()), set)
			if err != nil {
				g.record(r, sess, outcomeFor(err), err.Error())
				response.Error(w, r, g.logger, err)
				return
			}

			if sess.CachedRoles == nil || *sess.CachedRoles != flags {
				sess.CachedRoles = &flags
				g.commit(w, r, sess)
			}
			next.ServeHTTP(w, r)
		}
	}
}

// Rider envia entregadores ainda não verificados para a página de análise.
func (g *Gate) Rider() func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := GetSession(r.Context())
			dest := g.svc.ResolveRiderVerification(r.Context(), sess)
			if g.redirect(w, r, sess, dest, "rider_verification") {
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// redirect escreve o 302 quando o destino não é a própria página. Retorna true se redirecionou.
func (g *Gate) redirect(w http.ResponseWriter, r *http.Request, sess *domain.Session, dest domain.Destination, reason string) bool {
	if dest.IsProceed() || dest.Path() == r.URL.Path {
		return false
	}
	g.logger.Debug("Gate redirecionou a requisição.", map[string]interface{}{
		"user_id": sess.UserID,
		"from":    r.URL.Path,
		"to":      dest.Path(),
		"reason":  reason,
	})
	g.record(r, sess, domain.OutcomeRedirect, reason+" -> "+dest.Path())
	http.Redirect(w, r, dest.Path(), http.StatusFound)
	return true
}

func (g *Gate) commit(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	cookie, err := g.store.Commit(r.Context(), sess)
	if err != nil {
		g.logger.Warn("Falha ao regravar a sessão com os papéis.", map[string]interface{}{"user_id": sess.UserID, "error": err.Error()})
		return
	}
	http.SetCookie(w, cookie)
}

// record grava o evento sem alterar a decisão; erros apenas são logados.
func (g *Gate) record(r *http.Request, sess *domain.Session, outcome domain.GateOutcome, reason string) {
	if g.audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), auditTimeout)
	defer cancel()

	event := domain.GateEvent{UserID: sess.UserID, Path: r.URL.Path, Outcome: outcome, Reason: reason}
	if err := g.audit.Record(ctx, event); err != nil {
		g.logger.Warn("Falha ao auditar decisão do gate.", map[string]interface{}{"outcome": string(outcome), "error": err.Error()})
	}
}

func outcomeFor(err error) domain.GateOutcome {
	var forbidden *apperror.ForbiddenError
	if errors.As(err, &forbidden) {
		return domain.OutcomeForbidden
	}
	return domain.OutcomeUnauthorized
}
