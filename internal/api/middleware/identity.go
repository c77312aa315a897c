package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/osteosalud/booking-service/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"

	// HeaderUserID заголовок с идентификатором сессии клиента
	// Клиент без заголовка работает как гость
	HeaderUserID = "X-User-ID"
)

// Identity извлекает идентификатор сессии клиента из заголовка
// и кладет его в контекст запроса. Аутентификации здесь нет:
// идентификатор служит только для привязки гостевых бронирований
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			userID = domain.GuestUserID
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор сессии из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
