package accountrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

// Endpoints do serviço remoto de contas.
const (
	EndpointLogin        = "/login/"
	EndpointRegistration = "/get-registration/"
	EndpointRole         = "/get-role/"
	EndpointRiderStatus  = "/rider-status/get_rider_status/"

	headerUserID = "X-User-Id"
	maxBodyBytes = 1 << 20
)

// AccountRepository implementa domain.AccountRepository sobre a API REST do backend.
// Cada chamada roda com o seu próprio timeout; timeout é tratado como serviço indisponível.
type AccountRepository struct {
	BaseURL string
	Timeout time.Duration
	client  *http.Client
	tracer  trace.Tracer
	logger  logger.Logger
}

// NewAccountRepository cria o cliente HTTP do serviço de contas.
func NewAccountRepository(baseURL string, timeout time.Duration, log logger.Logger) *AccountRepository {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &AccountRepository{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		client:  &http.Client{Transport: transport},
		tracer:  otel.Tracer("storefront/accountrepo"),
		logger:  log,
	}
}

// --- Formatos de resposta (validados na fronteira) ---

type registrationBody struct {
	IsCustomer        *bool `json:"is_customer"`
	IsRider           *bool `json:"is_rider"`
	IsModerator       *bool `json:"is_moderator"`
	IsAdmin           *bool `json:"is_admin"`
	RegistrationStage *int  `json:"registration_stage"`
}

func (b registrationBody) toState(endpoint string) (domain.RegistrationState, error) {
	if b.IsRider == nil || b.IsCustomer == nil {
		return domain.RegistrationState{}, apperror.NewInvalidResponseError(endpoint, "campos is_rider/is_customer ausentes", nil)
	}

	state := domain.RegistrationState{
		IsRider:    *b.IsRider,
		IsCustomer: *b.IsCustomer,
		Roles: domain.RoleFlags{
			IsRider:     *b.IsRider,
			IsCustomer:  *b.IsCustomer,
			IsModerator: b.IsModerator != nil && *b.IsModerator,
			IsAdmin:     b.IsAdmin != nil && *b.IsAdmin,
		},
	}
	if b.RegistrationStage != nil {
		state.Stage = *b.RegistrationStage
	}
	return state, nil
}

type roleBody struct {
	IsAdmin     *bool `json:"is_admin"`
	IsCustomer  *bool `json:"is_customer"`
	IsRider     *bool `json:"is_rider"`
	IsModerator *bool `json:"is_moderator"`
}

type riderStatusBody struct {
	Success     *bool `json:"success"`
	RiderStatus *bool `json:"rider_status"`
}

type loginBody struct {
	UserID string `json:"user_id"`
	registrationBody
}

// --- Operações ---

// GetRegistration busca o registro de cadastro (estágio + papéis) do usuário.
func (r *AccountRepository) GetRegistration(ctx context.Context, userID string) (domain.RegistrationState, error) {
	var body registrationBody
	if err := r.get(ctx, EndpointRegistration, userID, &body); err != nil {
		return domain.RegistrationState{}, err
	}
	return body.toState(EndpointRegistration)
}

// GetLogin busca o registro de login/papel, usado como fonte secundária.
func (r *AccountRepository) GetLogin(ctx context.Context, userID string) (domain.RegistrationState, error) {
	var body registrationBody
	if err := r.get(ctx, EndpointLogin, userID, &body); err != nil {
		return domain.RegistrationState{}, err
	}
	return body.toState(EndpointLogin)
}

// GetRole busca as flags de papel do usuário.
func (r *AccountRepository) GetRole(ctx context.Context, userID string) (domain.RoleFlags, error) {
	var body roleBody
	if err := r.get(ctx, EndpointRole, userID, &body); err != nil {
		return domain.RoleFlags{}, err
	}
	if body.IsAdmin == nil || body.IsCustomer == nil || body.IsRider == nil || body.IsModerator == nil {
		return domain.RoleFlags{}, apperror.NewInvalidResponseError(EndpointRole, "flags de papel ausentes", nil)
	}
	return domain.RoleFlags{
		IsAdmin:     *body.IsAdmin,
		IsCustomer:  *body.IsCustomer,
		IsRider:     *body.IsRider,
		IsModerator: *body.IsModerator,
	}, nil
}

// GetRiderStatus consulta se o entregador já foi verificado.
func (r *AccountRepository) GetRiderStatus(ctx context.Context, userID string) (domain.RiderStatus, error) {
	var body riderStatusBody
	if err := r.get(ctx, EndpointRiderStatus, userID, &body); err != nil {
		return domain.RiderStatus{}, err
	}
	if body.Success == nil || body.RiderStatus == nil {
		return domain.RiderStatus{}, apperror.NewInvalidResponseError(EndpointRiderStatus, "campos success/rider_status ausentes", nil)
	}
	return domain.RiderStatus{Success: *body.Success, Verified: *body.RiderStatus}, nil
}

// Login autentica as credenciais no backend e devolve o usuário com seu estado de cadastro.
func (r *AccountRepository) Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResult, error) {
	payload, err := json.Marshal(credentials)
	if err != nil {
		return domain.LoginResult{}, apperror.NewInternalError("Falha ao serializar credenciais.", err)
	}

	var body loginBody
	status, err := r.do(ctx, http.MethodPost, EndpointLogin, "", bytes.NewReader(payload), &body)
	if status == http.StatusUnauthorized || status == http.StatusBadRequest || status == http.StatusNotFound {
		return domain.LoginResult{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}
	if err != nil {
		return domain.LoginResult{}, err
	}
	if body.UserID == "" {
		return domain.LoginResult{}, apperror.NewInvalidResponseError(EndpointLogin, "user_id ausente", nil)
	}

	state, err := body.registrationBody.toState(EndpointLogin)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return domain.LoginResult{UserID: body.UserID, State: state}, nil
}

// get executa um GET autenticado pelo header X-User-Id.
func (r *AccountRepository) get(ctx context.Context, endpoint, userID string, out interface{}) error {
	_, err := r.do(ctx, http.MethodGet, endpoint, userID, nil, out)
	return err
}

// do executa a chamada com timeout próprio, decodifica o JSON e traduz falhas para
// RemoteUnavailable/InvalidResponse. Retorna o status HTTP quando houve resposta.
func (r *AccountRepository) do(ctx context.Context, method, endpoint, userID string, body io.Reader, out interface{}) (int, error) {
	ctx, span := r.tracer.Start(ctx, "account "+method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.method", method), attribute.String("account.endpoint", endpoint)),
	)
	defer span.End()

	ctxTimeout, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxTimeout, method, r.BaseURL+endpoint, body)
	if err != nil {
		return 0, apperror.NewInternalError(fmt.Sprintf("Falha ao montar requisição para %s.", endpoint), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(headerUserID, userID)
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		r.logger.Warn("Falha de transporte no serviço de contas.", map[string]interface{}{"endpoint": endpoint, "error": err.Error()})
		return 0, apperror.NewRemoteUnavailableError(endpoint, 0, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	r.logger.Debug("Resposta do serviço de contas.", map[string]interface{}{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"latency":  time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, resp.Status)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return resp.StatusCode, apperror.NewRemoteUnavailableError(endpoint, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode")
		// Timeout durante a leitura do corpo continua sendo indisponibilidade.
		if ctxTimeout.Err() != nil {
			return resp.StatusCode, apperror.NewRemoteUnavailableError(endpoint, 0, ctxTimeout.Err())
		}
		return resp.StatusCode, apperror.NewInvalidResponseError(endpoint, "JSON malformado", err)
	}
	return resp.StatusCode, nil
}
