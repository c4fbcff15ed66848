package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.doJSON(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "coach@example.com",
		"password": "anything",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Logged in", body["message"])
	require.NotEmpty(t, body["coach_id"])
	require.NotEmpty(t, body["token"])
}

func TestLogin_SameEmailResolvesSameCoach(t *testing.T) {
	env := newTestEnv(t)

	first := env.login(t, "a@b.com")
	second := env.login(t, "a@b.com")
	require.Equal(t, first, second)
}

func TestLogin_InvalidEmailRejected(t *testing.T) {
	env := newTestEnv(t)

	code, body := env.doJSON(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "not-an-email",
		"password": "pw",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, body, "error")
}

func TestLogin_MissingPasswordRejected(t *testing.T) {
	env := newTestEnv(t)

	code, _ := env.doJSON(t, http.MethodPost, "/auth/login", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, code)
}
