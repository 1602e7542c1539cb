package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
)

type contextKey string

const (
	// UserIDHeader заголовок с ID аутентифицированного владельца (проставляется шлюзом)
	UserIDHeader = "X-User-ID"

	userIDKey contextKey = "userID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
)

// Auth требует заголовок X-User-ID и кладёт его значение в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достаёт ID пользователя, положенный Auth
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
