package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	now      func() time.Time
}

// NewProfileService creates the user preference service.
func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the stored profile, or the defaults before setup has run.
func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx, domain.LocalUserID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultProfile(), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, p *domain.UserProfile) error {
	if p.WeeklyGoal <= 0 {
		return fmt.Errorf("weekly goal %d: %w", p.WeeklyGoal, domain.ErrValidation)
	}
	if p.DefaultDuration <= 0 {
		return fmt.Errorf("default duration %d: %w", p.DefaultDuration, domain.ErrValidation)
	}
	for _, c := range p.PreferredCategories {
		if !domain.ValidCategories[string(c)] {
			return fmt.Errorf("category %q: %w", c, domain.ErrValidation)
		}
	}
	p.UserID = domain.LocalUserID
	p.UpdatedAt = s.now()
	return s.profiles.Upsert(ctx, p)
}
