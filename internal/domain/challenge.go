package domain

// Challenge is a catalog-defined short timed activity template.
// Challenges are reference data: read-only to everything outside the catalog.
type Challenge struct {
	ID              string
	Title           string
	Description     string
	Category        Category
	DurationMinutes int
	Difficulty      int // 1..3
	Instructions    []string
}
