package service

import (
	"context"
	"testing"
	"time"

	"brocoachme/coach-app/internal/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDashboardSummary(t *testing.T) {
	clientRepo := &fakeClientRepo{}
	activityRepo := &fakeActivityRepo{}
	svc := NewDashboardService(clientRepo, activityRepo)
	coachID := primitive.NewObjectID()

	for i := 0; i < 3; i++ {
		_, err := clientRepo.Create(context.Background(), &domain.Client{CoachID: coachID, Name: "c"})
		require.NoError(t, err)
	}
	for i := 0; i < 8; i++ {
		_, err := activityRepo.Create(context.Background(), &domain.Activity{
			CoachID:    coachID,
			Type:       domain.ActivityTypeInfo,
			Message:    "did something",
			OccurredAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(context.Background(), coachID)
	require.NoError(t, err)
	require.Equal(t, int64(3), summary.TotalClients)
	require.Len(t, summary.RecentActivity, recentActivityLimit)
	require.Equal(t, QuickActions, summary.QuickActions)
}

func TestDashboardSummary_EmptyCoach(t *testing.T) {
	svc := NewDashboardService(&fakeClientRepo{}, &fakeActivityRepo{})

	summary, err := svc.Summary(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.Zero(t, summary.TotalClients)
	require.NotNil(t, summary.RecentActivity)
	require.Empty(t, summary.RecentActivity)
}
