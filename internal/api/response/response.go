package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
	"storefront/internal/pkg/logger"
)

// JSON escreve uma resposta de sucesso.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz o erro para status HTTP e escreve o corpo padronizado {code, category, message}.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	JSON(w, log, status, domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// MethodNotAllowed responde 405 para métodos não suportados pela rota.
func MethodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
}
