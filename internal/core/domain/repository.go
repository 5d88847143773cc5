package domain

import (
	"context"
	"time"
)

type LogRepository interface {
	// GetByDate returns the log stored for date, or (nil, nil) when there is none.
	GetByDate(ctx context.Context, date string) (*DayLog, error)

	// Save persists the whole log, replacing any previous version for the same date.
	// The write is durable when Save returns.
	Save(ctx context.Context, log *DayLog) error
}

// LogRangeReader is implemented by stores that can fetch a date window in one call.
type LogRangeReader interface {
	// ListBetween returns the stored logs with from <= date <= to, ordered by date.
	ListBetween(ctx context.Context, from, to time.Time) ([]*DayLog, error)
}
