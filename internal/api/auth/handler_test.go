package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/api/auth"
	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
	"storefront/internal/service/authservice"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, credentials domain.Credentials) (authservice.LoginOutcome, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(authservice.LoginOutcome), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Open(r *http.Request) (*domain.Session, error) {
	args := m.Called(r)
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockStore) Commit(ctx context.Context, s *domain.Session) (*http.Cookie, error) {
	args := m.Called(ctx, s)
	cookie, _ := args.Get(0).(*http.Cookie)
	return cookie, args.Error(1)
}

func (m *MockStore) Destroy(ctx context.Context, s *domain.Session) (*http.Cookie, error) {
	args := m.Called(ctx, s)
	cookie, _ := args.Get(0).(*http.Cookie)
	return cookie, args.Error(1)
}

func TestLoginHandler_Success(t *testing.T) {
	svc := new(MockAuthService)
	store := new(MockStore)
	h := auth.NewHandler(svc, store, logger.NewNop())

	creds := domain.Credentials{Email: "c@loja.com", Password: "segredo"}
	roles := domain.RoleFlags{IsCustomer: true}
	svc.On("Login", mock.Anything, creds).Return(authservice.LoginOutcome{
		Session: domain.Session{UserID: "c1", RegistrationStage: 3, CachedRoles: &roles},
		Role:    domain.TagCustomer,
	}, nil)
	store.On("Commit", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.UserID == "c1" && s.RegistrationStage == 3 && s.CachedRoles.IsCustomer
	})).Return(&http.Cookie{Name: "__session", Value: "tok"}, nil)

	rr := httptest.NewRecorder()
	h.LoginHandler(rr, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"c@loja.com","password":"segredo"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.UserID)
	assert.Equal(t, domain.TagCustomer, resp.Role)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "__session=tok")
	svc.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	svc := new(MockAuthService)
	h := auth.NewHandler(svc, new(MockStore), logger.NewNop())

	rr := httptest.NewRecorder()
	h.LoginHandler(rr, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginHandler_Unauthorized(t *testing.T) {
	svc := new(MockAuthService)
	store := new(MockStore)
	h := auth.NewHandler(svc, store, logger.NewNop())
	svc.On("Login", mock.Anything, mock.Anything).Return(authservice.LoginOutcome{}, apperror.NewUnauthorizedError("Credenciais inválidas."))

	rr := httptest.NewRecorder()
	h.LoginHandler(rr, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"c@loja.com","password":"x"}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Header().Get("Set-Cookie"))
	store.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestLoginHandler_MethodNotAllowed(t *testing.T) {
	h := auth.NewHandler(new(MockAuthService), new(MockStore), logger.NewNop())
	rr := httptest.NewRecorder()
	h.LoginHandler(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestLogoutHandler(t *testing.T) {
	store := new(MockStore)
	h := auth.NewHandler(new(MockAuthService), store, logger.NewNop())
	store.On("Destroy", mock.Anything, mock.Anything).Return(&http.Cookie{Name: "__session", Value: "", MaxAge: -1}, nil)

	rr := httptest.NewRecorder()
	h.LogoutHandler(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
	store.AssertExpectations(t)
}
