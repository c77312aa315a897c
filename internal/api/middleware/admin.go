package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/osteosalud/booking-service/internal/api/handlers"
)

const (
	adminKey contextKey = "isAdmin"

	msgMissingToken = "falta el token de administrador"
	msgInvalidToken = "token de administrador no válido"
)

// TokenValidator интерфейс проверки административных токенов
type TokenValidator interface {
	Validate(token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет Bearer-токен администратора
// Запросы без валидного токена не доходят до обработчиков
func AdminAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("AdminAuth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if err := validator.Validate(strings.TrimSpace(token)); err != nil {
				logger.Warn("AdminAuth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin сообщает, прошел ли запрос административную аутентификацию
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(adminKey).(bool)
	return ok && isAdmin
}
