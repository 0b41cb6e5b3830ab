package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bandhall/BRS-ReservationService/internal/api/handlers"
	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

// Заголовки, проставляемые шлюзом аутентификации
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Сообщения об ошибках авторизации
const (
	msgUnauthorized = "требуется аутентификация"
	msgAdminOnly    = "операция доступна только администратору"
)

type contextKey int

const (
	userIDKey contextKey = iota
	userRoleKey
)

// UserID извлекает ID пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UserRole извлекает роль пользователя из контекста запроса
func UserRole(ctx context.Context) domain.Role {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	if !ok {
		return domain.RoleUser
	}
	return role
}

// Auth проверяет заголовки аутентификации и кладет пользователя в контекст.
// Неизвестная или пустая роль трактуется как обычный пользователь
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
		if err != nil || userID < 1 {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if !role.Valid() {
			role = domain.RoleUser
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью администратора.
// Должен стоять после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !UserRole(r.Context()).IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}
