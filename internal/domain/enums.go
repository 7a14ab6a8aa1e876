package domain

type Category string

const (
	CategoryPhysical     Category = "physical"
	CategoryMindfulness  Category = "mindfulness"
	CategoryLearning     Category = "learning"
	CategoryCreativity   Category = "creativity"
	CategoryProductivity Category = "productivity"
	CategorySocial       Category = "social"
)

// Categories lists every challenge category in display order.
var Categories = []Category{
	CategoryPhysical,
	CategoryMindfulness,
	CategoryLearning,
	CategoryCreativity,
	CategoryProductivity,
	CategorySocial,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"physical": true, "mindfulness": true, "learning": true,
	"creativity": true, "productivity": true, "social": true,
}

type ActivityStatus string

const (
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityCompleted  ActivityStatus = "completed"
)

type SessionState string

const (
	SessionIdle      SessionState = "idle"
	SessionRunning   SessionState = "running"
	SessionPaused    SessionState = "paused"
	SessionCompleted SessionState = "completed"
)

type BadgeRequirement string

const (
	RequireTotalChallenges BadgeRequirement = "total_challenges"
	RequireTotalMinutes    BadgeRequirement = "total_minutes"
	RequireStreakDays      BadgeRequirement = "streak_days"
	RequireCategoryCount   BadgeRequirement = "category_count"
)
