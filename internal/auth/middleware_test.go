package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *int) {
	t.Helper()
	var seenAdminID *int
	handler := AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := AdminIDFromContext(r.Context())
		seenAdminID = &id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seenAdminID
}

func TestAdminAuthMiddleware_NoHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, seenAdminID := protectedRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seenAdminID)
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signToken(t, "test-secret", jwt.MapClaims{
		"admin_id": 1,
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	rec, seenAdminID := protectedRequest(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seenAdminID)
	assert.Equal(t, 1, *seenAdminID)
}

func TestAdminAuthMiddleware_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signToken(t, "other-secret", jwt.MapClaims{
		"admin_id": 1,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := protectedRequest(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signToken(t, "test-secret", jwt.MapClaims{
		"admin_id": 1,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	rec, _ := protectedRequest(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
