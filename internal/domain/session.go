package domain

import "context"

// Session representa os dados de sessão do visitante, persistidos pelo session store (cookie ou Redis).
// Uma sessão vazia (sem UserID) representa um visitante anônimo.
type Session struct {
	ID                string     `json:"-"` // Usado apenas pelo RedisStore
	UserID            string     `json:"user_id,omitempty"`
	RegistrationStage int        `json:"registration_stage,omitempty"`
	CachedRoles       *RoleFlags `json:"cached_roles,omitempty"`
}

// IsAuthenticated indica se a sessão possui um usuário logado.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != ""
}

// RoleFlags são as capacidades independentes de uma conta. Uma conta pode ter várias ao mesmo tempo.
type RoleFlags struct {
	IsAdmin     bool `json:"is_admin"`
	IsCustomer  bool `json:"is_customer"`
	IsRider     bool `json:"is_rider"`
	IsModerator bool `json:"is_moderator"`
}

// Role identifica uma das flags de RoleFlags, usada na declaração dos papéis exigidos por rota.
type Role string

const (
	RoleAdmin     Role = "isAdmin"
	RoleCustomer  Role = "isCustomer"
	RoleRider     Role = "isRider"
	RoleModerator Role = "isModerator"
)

// Has informa se a flag correspondente ao papel está ativa.
func (f RoleFlags) Has(role Role) bool {
	switch role {
	case RoleAdmin:
		return f.IsAdmin
	case RoleCustomer:
		return f.IsCustomer
	case RoleRider:
		return f.IsRider
	case RoleModerator:
		return f.IsModerator
	}
	return false
}

// RoleSet é o conjunto de papéis aceitos por uma rota.
type RoleSet []Role

// SatisfiedBy retorna true se pelo menos um papel do conjunto estiver ativo nas flags.
// Um conjunto vazio nunca é satisfeito.
func (s RoleSet) SatisfiedBy(flags RoleFlags) bool {
	for _, role := range s {
		if flags.Has(role) {
			return true
		}
	}
	return false
}

// RoleTag é a classificação única de uma conta, calculada a partir das flags.
type RoleTag string

const (
	TagAdmin      RoleTag = "admin"
	TagModerator  RoleTag = "moderator"
	TagRider      RoleTag = "rider"
	TagCustomer   RoleTag = "customer"
	TagUnassigned RoleTag = "unassigned"
)

// RegistrationState é o estágio de cadastro retornado pelo serviço de contas.
// Stage == 0 significa que o serviço não informou o estágio.
type RegistrationState struct {
	Stage      int  `json:"registration_stage"`
	IsRider    bool `json:"is_rider"`
	IsCustomer bool `json:"is_customer"`
	Roles      RoleFlags
}

// Actionable indica se o registro traz informação suficiente para decidir um redirecionamento.
func (s RegistrationState) Actionable() bool {
	return s.Stage != 0 || s.IsRider || s.IsCustomer
}

// RiderStatus é a resposta do endpoint de verificação do entregador.
type RiderStatus struct {
	Success  bool `json:"success"`
	Verified bool `json:"rider_status"`
}

// LoginResult é o retorno do serviço de contas após autenticação por credenciais.
type LoginResult struct {
	UserID string
	State  RegistrationState
}

// Credentials é o payload de login enviado pelo visitante.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountRepository define o contrato com o serviço remoto de contas (fonte da verdade).
type AccountRepository interface {
	GetRegistration(ctx context.Context, userID string) (RegistrationState, error)
	GetLogin(ctx context.Context, userID string) (RegistrationState, error)
	GetRole(ctx context.Context, userID string) (RoleFlags, error)
	GetRiderStatus(ctx context.Context, userID string) (RiderStatus, error)
	Login(ctx context.Context, credentials Credentials) (LoginResult, error)
}
