package domain

import "time"

// LocalUserID is the single-user install's identity.
const LocalUserID = "local"

// UserProfile holds the user's display name and tracking preferences.
type UserProfile struct {
	UserID              string
	Name                string
	WeeklyGoal          int
	DefaultDuration     int
	PreferredCategories []Category
	UpdatedAt           time.Time
}

// DefaultProfile is the profile used before setup has run.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		UserID:              LocalUserID,
		WeeklyGoal:          30,
		DefaultDuration:     5,
		PreferredCategories: append([]Category(nil), Categories...),
	}
}
