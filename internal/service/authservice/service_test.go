package authservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
	"storefront/internal/service/authservice"
)

type MockAccountRepository struct {
	mock.Mock
	domain.AccountRepository
}

func (m *MockAccountRepository) Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResult, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.LoginResult), args.Error(1)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := authservice.NewService(repo, logger.NewNop())
	creds := domain.Credentials{Email: "rider@loja.com", Password: "segredo"}

	repo.On("Login", mock.Anything, creds).Return(domain.LoginResult{
		UserID: "r1",
		State: domain.RegistrationState{
			Stage:   2,
			IsRider: true,
			Roles:   domain.RoleFlags{IsRider: true},
		},
	}, nil)

	out, err := svc.Login(context.Background(), domain.Credentials{Email: "  rider@loja.com ", Password: "segredo"})

	require.NoError(t, err)
	assert.Equal(t, "r1", out.Session.UserID)
	assert.Equal(t, 2, out.Session.RegistrationStage)
	assert.Equal(t, &domain.RoleFlags{IsRider: true}, out.Session.CachedRoles)
	assert.Equal(t, domain.TagRider, out.Role)
	assert.Equal(t, "/profiling", out.Next)
	repo.AssertExpectations(t)
}

func TestLogin_Validation(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := authservice.NewService(repo, logger.NewNop())

	for _, creds := range []domain.Credentials{
		{Email: "", Password: "x"},
		{Email: "a@b.com", Password: ""},
		{Email: "sem-arroba", Password: "x"},
	} {
		_, err := svc.Login(context.Background(), creds)
		assert.IsType(t, &apperror.ValidationError{}, err)
	}
	repo.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogin_PropagatesRemoteError(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := authservice.NewService(repo, logger.NewNop())
	repo.On("Login", mock.Anything, mock.Anything).Return(domain.LoginResult{}, apperror.NewRemoteUnavailableError("/login/", 503, nil))

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	assert.True(t, apperror.IsRemoteFailure(err))
}
