package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"storefront/internal/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID propaga (ou gera) o ID da requisição no header e no contexto.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RequestIDKey, id)))
	})
}

// GetRequestID retorna o ID anexado por RequestID ("" se ausente).
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog registra método, caminho, status e latência de cada requisição.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := map[string]interface{}{
				"request_id": GetRequestID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"latency":    time.Since(start).String(),
			}
			switch {
			case rec.status >= 500:
				log.Warn("Erro de servidor", fields)
			case rec.status >= 400:
				log.Info("Erro do cliente", fields)
			default:
				log.Debug("Requisição concluída", fields)
			}
		})
	}
}
