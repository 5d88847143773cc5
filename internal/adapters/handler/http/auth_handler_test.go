package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success: token opens protected routes", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/login", `{"password":"`+ownerPassword+`"}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[map[string]string](t, w)
		assert.Equal(t, "Bearer", res["token_type"])

		subject, err := env.tokens.ValidateToken(res["token"])
		require.NoError(t, err)
		assert.Equal(t, domain.OwnerSubject, subject)

		w = env.do(http.MethodGet, "/api/v1/logs/2024-03-10", "", res["token"])
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Fail: 401 wrong password", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/login", `{"password":"wrong-password"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: 400 missing password", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/login", `{}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthAndCORS(t *testing.T) {
	env := setupEnv(t)

	w := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "No database configured")
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = env.do(http.MethodOptions, "/api/v1/logs/2024-03-10", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
