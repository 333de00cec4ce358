package period

import (
	"context"
	"time"
)

// Checker answers whether a company's attendance data is administratively
// closed for edits anywhere inside a date range. The generator consults it
// once per batch, before any write.
type Checker interface {
	IsLocked(ctx context.Context, companyID string, from, to time.Time) (bool, string, error)
}

// LockedError aborts a whole generation batch. The message is server-provided
// and surfaced verbatim to the caller.
type LockedError struct {
	Message string
}

func (e *LockedError) Error() string {
	return e.Message
}
