package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/microspark/microspark/internal/domain"
)

// catalogFilter is the category/duration pair shared by every command that
// narrows the challenge catalog.
type catalogFilter struct {
	category string
	duration int
}

// register adds the shared filter flags to a command's flag set.
func (f *catalogFilter) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.category, "category", "c", "all", "Filter by category (or \"all\")")
	fs.IntVarP(&f.duration, "duration", "d", 0, "Filter by duration in minutes (0 = any)")
}

// validate rejects unknown categories before the filter reaches the catalog.
func (f *catalogFilter) validate() error {
	if f.category != "" && f.category != "all" && !domain.ValidCategories[f.category] {
		return fmt.Errorf("unknown category %q (one of: %v)", f.category, domain.Categories)
	}
	if f.duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}
