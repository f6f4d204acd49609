package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/pkg/cache"
	"storefront/internal/pkg/logger"
)

// RateLimiter limita requisições por IP numa janela fixa, com contador no Redis.
// Se o Redis falhar, a requisição segue (o limite não deve derrubar a loja).
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			if errors.Is(err, cache.ErrCacheMiss) {
				if err := client.Set(ctx, key, 1, duration); err != nil {
					log.Warn("Rate limiter indisponível.", map[string]interface{}{"error": err.Error()})
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			} else if err != nil {
				log.Warn("Rate limiter indisponível.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("X-RateLimit-Remaining", "0")
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Warn("Falha ao incrementar contador do rate limiter.", map[string]interface{}{"error": err.Error()})
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}
