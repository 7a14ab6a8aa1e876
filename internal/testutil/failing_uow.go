package testutil

import (
	"context"
	"sync/atomic"

	"github.com/microspark/microspark/internal/db"
)

// FailingUoW wraps a real UnitOfWork and rejects the first FailTimes
// WithinTx calls with Err before ever reaching the database. It simulates
// a transient store outage for retry and pending-queue tests.
type FailingUoW struct {
	Inner     db.UnitOfWork
	Err       error
	FailTimes int32

	calls atomic.Int32
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if u.calls.Add(1) <= u.FailTimes {
		return u.Err
	}
	return u.Inner.WithinTx(ctx, fn)
}

// Calls reports how many WithinTx attempts were made, failures included.
func (u *FailingUoW) Calls() int {
	return int(u.calls.Load())
}
