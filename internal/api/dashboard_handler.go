package api

import (
	"net/http"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service dependency.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardSummaryResponse is the landing-page overview payload.
type DashboardSummaryResponse struct {
	TotalClients   int64             `json:"total_clients"`
	RecentActivity []domain.Activity `json:"recent_activity"`
	QuickActions   []string          `json:"quick_actions"`
}

// Summary returns the client total, the five most recent activity entries,
// and the static quick-action suggestions for a coach.
func (h *DashboardHandler) Summary(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load dashboard summary")
		return
	}

	c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalClients:   summary.TotalClients,
		RecentActivity: summary.RecentActivity,
		QuickActions:   summary.QuickActions,
	})
}
