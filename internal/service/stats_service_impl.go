package service

import (
	"context"
	"errors"
	"time"

	"github.com/microspark/microspark/internal/catalog"
	"github.com/microspark/microspark/internal/contract"
	"github.com/microspark/microspark/internal/domain"
	"github.com/microspark/microspark/internal/repository"
)

// DefaultHeatmapDays matches the dashboard's 12-week activity grid.
const DefaultHeatmapDays = 84

type statsService struct {
	activities repository.ActivityRepo
	badges     repository.BadgeRepo
	profiles   repository.ProfileRepo
	now        func() time.Time
	categoryOf func(string) (domain.Category, bool)
}

// NewStatsService assembles the read side of the dashboard.
func NewStatsService(activities repository.ActivityRepo, badges repository.BadgeRepo, profiles repository.ProfileRepo, opts ...StatsOption) StatsService {
	s := &statsService{
		activities: activities,
		badges:     badges,
		profiles:   profiles,
		now:        func() time.Time { return time.Now().UTC() },
		categoryOf: catalog.CategoryOf,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StatsOption overrides a statsService collaborator, mainly in tests.
type StatsOption func(*statsService)

func WithStatsClock(now func() time.Time) StatsOption {
	return func(s *statsService) { s.now = now }
}

func (s *statsService) GetStats(ctx context.Context, heatmapDays int) (*contract.StatsView, error) {
	if heatmapDays <= 0 {
		heatmapDays = DefaultHeatmapDays
	}

	records, err := s.activities.ListCompleted(ctx, domain.LocalUserID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, domain.LocalUserID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = domain.DefaultProfile()
	} else if err != nil {
		return nil, err
	}

	now := s.now()
	challenges, minutes, byCategory := domain.Totals(records, s.categoryOf)
	streaks := domain.ComputeStreaks(records, now)

	weekly := domain.CompletionsThisWeek(records, now)
	if weekly > profile.WeeklyGoal {
		weekly = profile.WeeklyGoal
	}

	stats := domain.AggregateStats{
		TotalChallenges: challenges,
		TotalMinutes:    minutes,
		CurrentStreak:   streaks.Current,
		LongestStreak:   streaks.Longest,
		CategoryCounts:  byCategory,
	}

	unlockedViews, lockedViews, err := s.badgeViews(ctx, stats)
	if err != nil {
		return nil, err
	}

	return &contract.StatsView{
		TotalChallenges: challenges,
		TotalMinutes:    minutes,
		CurrentStreak:   streaks.Current,
		LongestStreak:   streaks.Longest,
		WeeklyGoal:      profile.WeeklyGoal,
		WeeklyProgress:  weekly,
		CategoryCounts:  byCategory,
		Heatmap:         domain.ComputeHeatmap(records, heatmapDays, now),
		Unlocked:        unlockedViews,
		Locked:          lockedViews,
	}, nil
}

func (s *statsService) badgeViews(ctx context.Context, stats domain.AggregateStats) (unlocked, locked []contract.BadgeView, err error) {
	rules, err := s.badges.ListDefinitions(ctx)
	if err != nil {
		return nil, nil, err
	}
	unlockedBadges, err := s.badges.ListUnlocked(ctx, domain.LocalUserID)
	if err != nil {
		return nil, nil, err
	}

	unlockedAt := make(map[string]time.Time, len(unlockedBadges))
	for _, b := range unlockedBadges {
		unlockedAt[b.Rule.ID] = b.UnlockedAt
	}

	for _, rule := range rules {
		view := contract.BadgeView{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			Color:       rule.Color,
			Progress:    rule.Progress(stats),
		}
		if at, ok := unlockedAt[rule.ID]; ok {
			view.Unlocked = true
			view.UnlockedAt = &at
			view.Progress = 100
			unlocked = append(unlocked, view)
		} else {
			locked = append(locked, view)
		}
	}
	return unlocked, locked, nil
}
