package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandhall/BRS-ReservationService/internal/domain"
)

func TestAuth(t *testing.T) {
	var gotID int64
	var gotRole domain.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
		gotRole = UserRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid headers populate context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "42")
		req.Header.Set("X-User-Role", "admin")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), gotID)
		assert.Equal(t, domain.RoleAdmin, gotRole)
	})

	t.Run("unknown role defaults to user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "42")
		req.Header.Set("X-User-Role", "superadmin")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.RoleUser, gotRole)
	})

	t.Run("missing user id is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := Auth(AdminOnly(next))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "42")
		req.Header.Set("X-User-Role", "admin")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
