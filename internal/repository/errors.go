package repository

import "errors"

// ErrNotFound is wrapped by every repository when a requested row is
// missing; callers test for it with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEvent is wrapped when an activity append collides with an
// already-stored completion-event id. Aggregation treats it as "already
// processed", never as data loss.
var ErrDuplicateEvent = errors.New("duplicate completion event")
