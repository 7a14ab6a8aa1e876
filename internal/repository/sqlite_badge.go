package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/microspark/microspark/internal/db"
	"github.com/microspark/microspark/internal/domain"
)

// SQLiteBadgeRepo implements BadgeRepo over a SQLite database.
type SQLiteBadgeRepo struct {
	db db.DBTX
}

// NewSQLiteBadgeRepo creates a new SQLiteBadgeRepo.
func NewSQLiteBadgeRepo(dbtx db.DBTX) *SQLiteBadgeRepo {
	return &SQLiteBadgeRepo{db: dbtx}
}

func (r *SQLiteBadgeRepo) ListDefinitions(ctx context.Context) ([]domain.BadgeRule, error) {
	query := `SELECT id, name, description, icon, color, requirement_type, requirement_value, category
		FROM achievements ORDER BY requirement_value`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing badge definitions: %w", err)
	}
	defer rows.Close()

	var rules []domain.BadgeRule
	for rows.Next() {
		var rule domain.BadgeRule
		err := rows.Scan(
			&rule.ID, &rule.Name, &rule.Description, &rule.Icon, &rule.Color,
			(*string)(&rule.Requirement), &rule.Threshold, (*string)(&rule.Category),
		)
		if err != nil {
			return nil, fmt.Errorf("scanning badge rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating badge rules: %w", err)
	}
	return rules, nil
}

func (r *SQLiteBadgeRepo) ListUnlocked(ctx context.Context, userID string) ([]domain.Badge, error) {
	query := `SELECT a.id, a.name, a.description, a.icon, a.color,
			a.requirement_type, a.requirement_value, a.category, u.unlocked_at
		FROM user_achievements u
		JOIN achievements a ON a.id = u.achievement_id
		WHERE u.user_id = ? AND u.unlocked_at IS NOT NULL
		ORDER BY u.unlocked_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing unlocked badges: %w", err)
	}
	defer rows.Close()

	var badges []domain.Badge
	for rows.Next() {
		var b domain.Badge
		var unlockedAt string
		err := rows.Scan(
			&b.Rule.ID, &b.Rule.Name, &b.Rule.Description, &b.Rule.Icon, &b.Rule.Color,
			(*string)(&b.Rule.Requirement), &b.Rule.Threshold, (*string)(&b.Rule.Category),
			&unlockedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning unlocked badge: %w", err)
		}
		if b.UnlockedAt, err = time.Parse(time.RFC3339, unlockedAt); err != nil {
			return nil, fmt.Errorf("parsing unlocked_at: %w", err)
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unlocked badges: %w", err)
	}
	return badges, nil
}

func (r *SQLiteBadgeRepo) Unlock(ctx context.Context, userID, badgeID string, at time.Time) error {
	// The COALESCE keeps the original unlock timestamp: unlocking is
	// monotonic and never rewrites history.
	query := `INSERT INTO user_achievements (user_id, achievement_id, progress, unlocked_at)
		VALUES (?, ?, 100, ?)
		ON CONFLICT(user_id, achievement_id)
		DO UPDATE SET progress = 100, unlocked_at = COALESCE(user_achievements.unlocked_at, excluded.unlocked_at)`
	_, err := r.db.ExecContext(ctx, query, userID, badgeID, at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("unlocking badge %s: %w", badgeID, err)
	}
	return nil
}

func (r *SQLiteBadgeRepo) UpsertProgress(ctx context.Context, userID, badgeID string, progress int) error {
	// Progress updates never clear unlocked_at.
	query := `INSERT INTO user_achievements (user_id, achievement_id, progress)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, achievement_id)
		DO UPDATE SET progress = excluded.progress`
	_, err := r.db.ExecContext(ctx, query, userID, badgeID, progress)
	if err != nil {
		return fmt.Errorf("upserting badge progress %s: %w", badgeID, err)
	}
	return nil
}
