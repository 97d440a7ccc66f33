package identity

import (
	"context"
	"net/http"
	"strconv"

	"parcel-service/internal/entities"
)

type contextKey struct{}

const (
	headerAccountID   = "X-Account-Id"
	headerAccountKind = "X-Account-Kind"
)

// Middleware достает идентичность вызывающего из заголовков, проставленных
// внешним auth-слоем. Сервисы доверяют этим значениям и делают собственные
// проверки владения сущностями.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, err := strconv.ParseInt(r.Header.Get(headerAccountID), 10, 64)
			if err != nil || accountID <= 0 {
				http.Error(w, "missing or invalid account identity", http.StatusUnauthorized)
				return
			}

			caller := entities.Caller{
				AccountID: accountID,
				Kind:      entities.AccountKindType(r.Header.Get(headerAccountKind)),
			}

			ctx := context.WithValue(r.Context(), contextKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext возвращает идентичность, положенную Middleware.
func CallerFromContext(ctx context.Context) (entities.Caller, bool) {
	caller, ok := ctx.Value(contextKey{}).(entities.Caller)
	return caller, ok
}

// ContextWithCaller используется в тестах хендлеров.
func ContextWithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}
