package authservice

import (
	"context"
	"net/mail"
	"strings"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
	"storefront/internal/service/gateservice"
)

// LoginOutcome é o resultado de um login bem-sucedido.
type LoginOutcome struct {
	Session domain.Session
	Role    domain.RoleTag
	Next    string // Próxima página do fluxo de cadastro ("" se o cadastro está completo)
}

// Service autentica credenciais no serviço de contas e monta a sessão.
type Service struct {
	repo   domain.AccountRepository
	logger logger.Logger
}

// NewService cria uma nova instância do serviço de login.
func NewService(repo domain.AccountRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Login valida o payload, autentica no backend e devolve a sessão a ser gravada.
func (s *Service) Login(ctx context.Context, credentials domain.Credentials) (LoginOutcome, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return LoginOutcome{}, apperror.NewValidationError("Email e senha são obrigatórios.")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return LoginOutcome{}, apperror.NewValidationError("Email inválido.")
	}

	result, err := s.repo.Login(ctx, credentials)
	if err != nil {
		if apperror.IsRemoteFailure(err) {
			s.logger.Error("Serviço de contas indisponível no login.", err)
		}
		return LoginOutcome{}, err
	}

	roles := result.State.Roles
	outcome := LoginOutcome{
		Session: domain.Session{
			UserID:            result.UserID,
			RegistrationStage: result.State.Stage,
			CachedRoles:       &roles,
		},
		Role: gateservice.ClassifyRole(roles),
		Next: gateservice.RegistrationDestination(result.State).Path(),
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"user_id": result.UserID, "role": string(outcome.Role), "stage": result.State.Stage})
	return outcome, nil
}
