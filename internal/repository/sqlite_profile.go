package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/microspark/microspark/internal/db"
	"github.com/microspark/microspark/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo over a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `SELECT user_id, name, weekly_goal, default_duration, preferred_categories, updated_at
		FROM user_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.UserProfile
	var categoriesStr, updatedAtStr string
	err := row.Scan(&p.UserID, &p.Name, &p.WeeklyGoal, &p.DefaultDuration, &categoriesStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	p.PreferredCategories = splitCategories(categoriesStr)
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing profile updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT INTO user_profiles (user_id, name, weekly_goal, default_duration, preferred_categories, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			weekly_goal = excluded.weekly_goal,
			default_duration = excluded.default_duration,
			preferred_categories = excluded.preferred_categories,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.Name,
		p.WeeklyGoal,
		p.DefaultDuration,
		joinCategories(p.PreferredCategories),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

func joinCategories(cats []domain.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitCategories(s string) []domain.Category {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.Category, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, domain.Category(p))
		}
	}
	return out
}
