package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	coachID := env.login(t, "coach@example.com")

	for _, name := range []string{"Alice", "Bob"} {
		code, _ := env.doJSON(t, http.MethodPost, "/clients?coach_id="+coachID, gin.H{"name": name})
		require.Equal(t, http.StatusOK, code)
	}

	code, body := env.doJSON(t, http.MethodGet, "/dashboard/summary?coach_id="+coachID, nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 2, body["total_clients"])

	activity, ok := body["recent_activity"].([]interface{})
	require.True(t, ok)
	require.Len(t, activity, 2) // one audit entry per added client

	actions, ok := body["quick_actions"].([]interface{})
	require.True(t, ok)
	require.Contains(t, actions, "Add Client")
	require.Contains(t, actions, "Create Program")
}

func TestDashboardSummary_FreshCoach(t *testing.T) {
	env := newTestEnv(t)
	coachID := env.login(t, "fresh@example.com")

	code, body := env.doJSON(t, http.MethodGet, "/dashboard/summary?coach_id="+coachID, nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 0, body["total_clients"])

	activity, ok := body["recent_activity"].([]interface{})
	require.True(t, ok)
	require.Empty(t, activity)
}
