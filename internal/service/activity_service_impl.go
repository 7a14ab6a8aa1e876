package service

import (
	"context"

	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
}

// NewActivityService creates the read-only activity feed service.
func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) ListRecent(ctx context.Context, days int) ([]*domain.ActivityRecord, error) {
	return s.activities.ListRecent(ctx, domain.LocalUserID, days)
}
