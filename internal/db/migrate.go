package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// whole list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_activities (
		id               TEXT PRIMARY KEY,
		event_id         TEXT,
		user_id          TEXT NOT NULL DEFAULT 'local',
		challenge_id     TEXT NOT NULL,
		status           TEXT NOT NULL
		                 CHECK(status IN ('in_progress','completed')),
		started_at       TEXT NOT NULL,
		completed_at     TEXT,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,

	// Completion-event identity: duplicate deliveries of the same event
	// must not create a second row.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_activities_event_id
		ON user_activities(event_id) WHERE event_id != ''`,

	`CREATE INDEX IF NOT EXISTS idx_user_activities_user_status
		ON user_activities(user_id, status)`,

	`CREATE INDEX IF NOT EXISTS idx_user_activities_completed_at
		ON user_activities(completed_at)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		icon              TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		requirement_type  TEXT NOT NULL
		                  CHECK(requirement_type IN
		                  ('total_challenges','total_minutes','streak_days','category_count')),
		requirement_value INTEGER NOT NULL,
		category          TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS user_achievements (
		user_id        TEXT NOT NULL,
		achievement_id TEXT NOT NULL REFERENCES achievements(id) ON DELETE CASCADE,
		progress       INTEGER NOT NULL DEFAULT 0,
		unlocked_at    TEXT,
		PRIMARY KEY (user_id, achievement_id)
	)`,

	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id              TEXT PRIMARY KEY,
		name                 TEXT NOT NULL DEFAULT '',
		weekly_goal          INTEGER NOT NULL DEFAULT 30,
		default_duration     INTEGER NOT NULL DEFAULT 5,
		preferred_categories TEXT NOT NULL DEFAULT '',
		updated_at           TEXT NOT NULL
	)`,

	// Default badge rule set. INSERT OR IGNORE keeps user edits and
	// re-runs cheap.
	`INSERT OR IGNORE INTO achievements
		(id, name, description, icon, color, requirement_type, requirement_value, category)
	VALUES
		('first-spark',    'First Spark',     'Complete your first challenge',        'bolt',           'primary',      'total_challenges', 1,   ''),
		('week-streak',    'Week Warrior',    '7-day streak achieved',                'calendar-check', 'success',      'streak_days',      7,   ''),
		('month-master',   'Month Master',    '30-day streak',                        'calendar',       'success',      'streak_days',      30,  ''),
		('century-club',   'Century Club',    '100 challenges completed',             'trophy',         'primary',      'total_challenges', 100, ''),
		('time-saver',     'Time Saver',      'Save 500 minutes',                     'clock',          'primary',      'total_minutes',    500, ''),
		('mindful-master', 'Mindful Master',  'Complete 10 mindfulness challenges',   'brain',          'mindfulness',  'category_count',   10,  'mindfulness'),
		('active-achiever','Active Achiever', 'Complete 15 physical challenges',      'running',        'physical',     'category_count',   15,  'physical'),
		('learning-legend','Learning Legend', 'Complete 12 learning challenges',      'book',           'learning',     'category_count',   12,  'learning'),
		('creative-genius','Creative Genius', 'Complete 8 creativity challenges',     'lightbulb',      'creativity',   'category_count',   8,   'creativity')`,
}
