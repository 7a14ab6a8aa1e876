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

// SQLiteActivityRepo implements ActivityRepo over a SQLite database. It
// accepts a DBTX so the same repo works standalone or tx-scoped.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(dbtx db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: dbtx}
}

const activityColumns = `id, event_id, user_id, challenge_id, status, started_at, completed_at, duration_minutes, notes, created_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.ActivityRecord) error {
	if err := a.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO user_activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.EventID,
		a.UserID,
		a.ChallengeID,
		string(a.Status),
		a.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(a.CompletedAt),
		a.DurationMinutes,
		a.Notes,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if a.EventID != "" && strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("activity for event %s: %w", a.EventID, ErrDuplicateEvent)
		}
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	query := `SELECT ` + activityColumns + ` FROM user_activities WHERE id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteActivityRepo) GetByEventID(ctx context.Context, eventID string) (*domain.ActivityRecord, error) {
	query := `SELECT ` + activityColumns + ` FROM user_activities WHERE event_id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, eventID))
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.ActivityRecord) error {
	if err := a.Validate(); err != nil {
		return err
	}
	query := `UPDATE user_activities
		SET event_id = ?, status = ?, completed_at = ?, duration_minutes = ?, notes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.EventID,
		string(a.Status),
		nullableTimeToString(a.CompletedAt),
		a.DurationMinutes,
		a.Notes,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) ListCompleted(ctx context.Context, userID string) ([]*domain.ActivityRecord, error) {
	query := `SELECT ` + activityColumns + ` FROM user_activities
		WHERE user_id = ? AND status = 'completed'
		ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing completed activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, userID string, days int) ([]*domain.ActivityRecord, error) {
	query := `SELECT ` + activityColumns + ` FROM user_activities
		WHERE user_id = ? AND started_at >= datetime('now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) scanActivity(row *sql.Row) (*domain.ActivityRecord, error) {
	var a domain.ActivityRecord
	var startedAtStr, createdAtStr string
	var completedAt sql.NullString

	err := row.Scan(
		&a.ID, &a.EventID, &a.UserID, &a.ChallengeID, (*string)(&a.Status),
		&startedAtStr, &completedAt, &a.DurationMinutes, &a.Notes, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	return r.populate(&a, startedAtStr, createdAtStr, completedAt)
}

func (r *SQLiteActivityRepo) scanActivities(rows *sql.Rows) ([]*domain.ActivityRecord, error) {
	var out []*domain.ActivityRecord
	for rows.Next() {
		var a domain.ActivityRecord
		var startedAtStr, createdAtStr string
		var completedAt sql.NullString
		err := rows.Scan(
			&a.ID, &a.EventID, &a.UserID, &a.ChallengeID, (*string)(&a.Status),
			&startedAtStr, &completedAt, &a.DurationMinutes, &a.Notes, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		populated, err := r.populate(&a, startedAtStr, createdAtStr, completedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) populate(a *domain.ActivityRecord, startedAt, createdAt string, completedAt sql.NullString) (*domain.ActivityRecord, error) {
	var err error
	if a.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	a.CompletedAt = parseNullableTime(completedAt)
	return a, nil
}
