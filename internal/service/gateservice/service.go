package gateservice

import (
	"context"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

// Service decide, antes do handler de uma página protegida, se a requisição segue
// ou para onde o visitante deve ser redirecionado. Nunca escreve no backend nem na sessão.
type Service struct {
	repo   domain.AccountRepository
	logger logger.Logger
}

// NewService cria uma nova instância do gate.
func NewService(repo domain.AccountRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// LookupStatus é a tag do resultado da busca em duas etapas.
type LookupStatus int

const (
	NotFound LookupStatus = iota
	Found
)

// RegistrationLookup é o resultado da busca do registro de cadastro.
// State só é válido quando Status == Found.
type RegistrationLookup struct {
	Status LookupStatus
	Source string
	State  domain.RegistrationState
}

// lookupRegistration consulta o registro de cadastro e, se não houver, o registro de
// login/papel. A segunda fonte só é consultada quando a primeira não encontrou nada.
func (s *Service) lookupRegistration(ctx context.Context, userID string) RegistrationLookup {
	state, err := s.repo.GetRegistration(ctx, userID)
	if err == nil {
		return RegistrationLookup{Status: Found, Source: "registration", State: state}
	}
	s.logger.Warn("Registro de cadastro indisponível, tentando fonte secundária.", map[string]interface{}{"user_id": userID, "error": err.Error()})

	state, err = s.repo.GetLogin(ctx, userID)
	if err != nil {
		s.logger.Warn("Fonte secundária de cadastro indisponível.", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return RegistrationLookup{Status: NotFound}
	}
	if !state.Actionable() {
		return RegistrationLookup{Status: NotFound}
	}
	return RegistrationLookup{Status: Found, Source: "login", State: state}
}

// ResolveRegistrationRedirect calcula o próximo passo do cadastro. Visitantes anônimos e
// qualquer falha remota resultam em Proceed: este gate redireciona, não autoriza.
func (s *Service) ResolveRegistrationRedirect(ctx context.Context, sess *domain.Session) domain.Destination {
	if !sess.IsAuthenticated() {
		return domain.Proceed()
	}

	lookup := s.lookupRegistration(ctx, sess.UserID)
	if lookup.Status == NotFound {
		s.logger.Info("Gate de cadastro liberado sem registro (fail-open).", map[string]interface{}{"user_id": sess.UserID})
		return domain.Proceed()
	}

	dest := RegistrationDestination(lookup.State)
	s.logger.Debug("Gate de cadastro avaliado.", map[string]interface{}{
		"user_id":     sess.UserID,
		"source":      lookup.Source,
		"stage":       lookup.State.Stage,
		"is_rider":    lookup.State.IsRider,
		"destination": dest.String(),
	})
	return dest
}

// RegistrationDestination aplica a tabela de estágios ao registro.
//
//	entregador: 1 -> /signup, 2 -> /profiling, 3 -> /number, >=4 -> Proceed
//	demais:     1 -> /profiling, 2 -> /number, 4 -> /home, outro -> Proceed
func RegistrationDestination(state domain.RegistrationState) domain.Destination {
	if state.IsRider {
		switch state.Stage {
		case 1:
			return domain.RedirectTo(domain.PathSignup)
		case 2:
			return domain.RedirectTo(domain.PathProfiling)
		case 3:
			return domain.RedirectTo(domain.PathNumber)
		}
		return domain.Proceed()
	}

	switch state.Stage {
	case 1:
		return domain.RedirectTo(domain.PathProfiling)
	case 2:
		return domain.RedirectTo(domain.PathNumber)
	case 4:
		return domain.RedirectTo(domain.PathHome)
	}
	return domain.Proceed()
}

// ResolveRoleAccess é a verificação de capacidade (fail-closed). As flags são buscadas no
// máximo uma vez por requisição, via cache.
func (s *Service) ResolveRoleAccess(ctx context.Context, sess *domain.Session, cache *RequestCache, allowed domain.RoleSet) (domain.RoleFlags, error) {
	if !sess.IsAuthenticated() {
		return domain.RoleFlags{}, apperror.NewUnauthorizedError("Sessão sem usuário.")
	}

	flags, ok := cache.Roles()
	if !ok {
		fetched, err := s.repo.GetRole(ctx, sess.UserID)
		cache.countFetch()
		if err != nil {
			s.logger.Warn("Não foi possível resolver os papéis do usuário.", map[string]interface{}{"user_id": sess.UserID, "error": err.Error()})
			return domain.RoleFlags{}, apperror.NewUnauthorizedCause("Não foi possível resolver os papéis do usuário.", err)
		}
		cache.storeRoles(fetched)
		flags = fetched
	}

	if !allowed.SatisfiedBy(flags) {
		return flags, apperror.NewForbiddenError("papel necessário ausente.")
	}
	return flags, nil
}

// ResolveRiderVerification envia entregadores ainda não verificados para a página de análise.
// Falhas remotas, success=false e sessões anônimas resultam em Proceed.
func (s *Service) ResolveRiderVerification(ctx context.Context, sess *domain.Session) domain.Destination {
	if !sess.IsAuthenticated() {
		return domain.Proceed()
	}

	status, err := s.repo.GetRiderStatus(ctx, sess.UserID)
	if err != nil {
		s.logger.Warn("Status do entregador indisponível (fail-open).", map[string]interface{}{"user_id": sess.UserID, "error": err.Error()})
		return domain.Proceed()
	}
	if !status.Success {
		s.logger.Warn("Serviço de status do entregador respondeu success=false (fail-open).", map[string]interface{}{"user_id": sess.UserID})
		return domain.Proceed()
	}
	if !status.Verified {
		return domain.RedirectTo(domain.PathPending)
	}
	return domain.Proceed()
}

// ClassifyRole reduz as flags a uma única classificação.
// Prioridade quando várias flags estão ativas: Admin > Moderator > Rider > Customer.
func ClassifyRole(flags domain.RoleFlags) domain.RoleTag {
	switch {
	case flags.IsAdmin:
		return domain.TagAdmin
	case flags.IsModerator:
		return domain.TagModerator
	case flags.IsRider:
		return domain.TagRider
	case flags.IsCustomer:
		return domain.TagCustomer
	}
	return domain.TagUnassigned
}
