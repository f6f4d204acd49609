package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do storefront.
// Ela permite que o código externo (Handler, Middleware) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "FORBIDDEN")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro de Domínio ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// UnauthorizedError representa a ausência de sessão/usuário onde um é exigido.
type UnauthorizedError struct {
	Msg string
	Err error
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return e.Err }

// NewUnauthorizedError cria um erro 401.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// NewUnauthorizedCause cria um erro 401 que preserva a causa (e.g., serviço remoto indisponível).
func NewUnauthorizedCause(msg string, err error) AppError {
	return &UnauthorizedError{Msg: msg, Err: err}
}

// ForbiddenError representa um usuário autenticado sem o papel exigido.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um erro 403.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// RemoteUnavailableError representa qualquer falha ao chamar o serviço de contas
// (rede, timeout, status não-2xx).
type RemoteUnavailableError struct {
	Endpoint string
	Status   int // 0 quando não houve resposta HTTP
	Err      error
}

func (e *RemoteUnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Serviço remoto indisponível: %s respondeu %d", e.Endpoint, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("Serviço remoto indisponível: %s: %s", e.Endpoint, e.Err.Error())
	}
	return fmt.Sprintf("Serviço remoto indisponível: %s", e.Endpoint)
}
func (e *RemoteUnavailableError) Category() string { return "REMOTE_UNAVAILABLE" }
func (e *RemoteUnavailableError) HTTPStatus() int  { return http.StatusBadGateway } // 502
func (e *RemoteUnavailableError) Unwrap() error    { return e.Err }

// NewRemoteUnavailableError cria um erro de falha na chamada remota.
func NewRemoteUnavailableError(endpoint string, status int, err error) AppError {
	return &RemoteUnavailableError{Endpoint: endpoint, Status: status, Err: err}
}

// InvalidResponseError representa uma resposta remota sem os campos obrigatórios.
type InvalidResponseError struct {
	Endpoint string
	Msg      string
	Err      error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("Resposta inválida de %s: %s", e.Endpoint, e.Msg)
}
func (e *InvalidResponseError) Category() string { return "INVALID_RESPONSE" }
func (e *InvalidResponseError) HTTPStatus() int  { return http.StatusBadGateway } // 502
func (e *InvalidResponseError) Unwrap() error    { return e.Err }

// NewInvalidResponseError cria um erro de resposta remota malformada.
func NewInvalidResponseError(endpoint, msg string, err error) AppError {
	return &InvalidResponseError{Endpoint: endpoint, Msg: msg, Err: err}
}

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %s", e.Msg, e.Err.Error())
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// IsRemoteFailure indica se o erro veio de uma chamada ao serviço remoto
// (indisponibilidade ou resposta malformada).
func IsRemoteFailure(err error) bool {
	var unavailable *RemoteUnavailableError
	var invalid *InvalidResponseError
	return errors.As(err, &unavailable) || errors.As(err, &invalid)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
