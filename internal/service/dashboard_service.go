package service

import (
	"context"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Number of activity entries shown on the dashboard.
const recentActivityLimit = 5

// QuickActions is the static list of suggested actions shown on the dashboard.
var QuickActions = []string{"Add Client", "Create Program"}

// DashboardSummary is the aggregate the dashboard renders on load.
type DashboardSummary struct {
	TotalClients   int64
	RecentActivity []domain.Activity
	QuickActions   []string
}

// DashboardService produces the landing-page overview for a coach.
type DashboardService interface {
	Summary(ctx context.Context, coachID primitive.ObjectID) (*DashboardSummary, error)
}

type dashboardService struct {
	clientRepo   repository.ClientRepository
	activityRepo repository.ActivityRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(clientRepo repository.ClientRepository, activityRepo repository.ActivityRepository) DashboardService {
	return &dashboardService{
		clientRepo:   clientRepo,
		activityRepo: activityRepo,
	}
}

// Summary returns the client total and the most recent activity for a coach.
func (s *dashboardService) Summary(ctx context.Context, coachID primitive.ObjectID) (*DashboardSummary, error) {
	total, err := s.clientRepo.CountByCoachID(ctx, coachID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetRecentByCoachID(ctx, coachID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		activity = []domain.Activity{}
	}

	return &DashboardSummary{
		TotalClients:   total,
		RecentActivity: activity,
		QuickActions:   QuickActions,
	}, nil
}
