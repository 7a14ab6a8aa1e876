// Package catalog holds the static challenge content and its lookup
// operations. The catalog is read-only reference data; nothing outside this
// package mutates it.
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/microspark/microspark/internal/domain"
)

// ErrUnknownChallenge is returned for lookups of ids not in the catalog.
var ErrUnknownChallenge = fmt.Errorf("unknown challenge")

// DefaultTolerance is the duration-match window, in minutes, used when a
// caller does not supply one.
const DefaultTolerance = 2

// ByID returns the challenge with the given id.
func ByID(id string) (domain.Challenge, error) {
	for _, c := range challenges {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Challenge{}, fmt.Errorf("challenge %q: %w", id, ErrUnknownChallenge)
}

// ByCategory returns the challenges in the given category. The pseudo
// category "all" returns the whole catalog.
func ByCategory(category string) []domain.Challenge {
	if category == "all" || category == "" {
		out := make([]domain.Challenge, len(challenges))
		copy(out, challenges)
		return out
	}
	var out []domain.Challenge
	for _, c := range challenges {
		if string(c.Category) == category {
			out = append(out, c)
		}
	}
	return out
}

// ByDuration returns challenges whose duration is within tolerance minutes
// of the requested one.
func ByDuration(minutes, tolerance int) []domain.Challenge {
	var out []domain.Challenge
	for _, c := range challenges {
		d := c.DurationMinutes - minutes
		if d < 0 {
			d = -d
		}
		if d <= tolerance {
			out = append(out, c)
		}
	}
	return out
}

// Random samples count challenges without replacement, optionally filtered
// by category and duration (0 duration means no duration filter). The
// random source is injected so callers can make the sampling deterministic.
func Random(rng *rand.Rand, count int, category string, duration int) []domain.Challenge {
	pool := ByCategory(category)
	if duration > 0 {
		var filtered []domain.Challenge
		for _, c := range pool {
			d := c.DurationMinutes - duration
			if d < 0 {
				d = -d
			}
			if d <= DefaultTolerance {
				filtered = append(filtered, c)
			}
		}
		pool = filtered
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

// CategoryOf resolves a challenge id to its category.
func CategoryOf(id string) (domain.Category, bool) {
	c, err := ByID(id)
	if err != nil {
		return "", false
	}
	return c.Category, true
}
