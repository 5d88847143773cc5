package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

var (
	_ domain.LogRepository  = (*InMemoryLogRepository)(nil)
	_ domain.LogRangeReader = (*InMemoryLogRepository)(nil)
)

type InMemoryLogRepository struct {
	store map[string]*domain.DayLog

	mu sync.RWMutex
}

func NewInMemoryLogRepository() *InMemoryLogRepository {
	return &InMemoryLogRepository{
		store: make(map[string]*domain.DayLog),
	}
}

func (r *InMemoryLogRepository) GetByDate(ctx context.Context, date string) (*domain.DayLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.store[date]
	if !ok {
		return nil, nil
	}
	return cloneLog(log), nil
}

func (r *InMemoryLogRepository) Save(ctx context.Context, log *domain.DayLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[log.Date] = cloneLog(log)
	return nil
}

func (r *InMemoryLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.DayLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := domain.FormatDate(from), domain.FormatDate(to)

	logs := []*domain.DayLog{}
	for date, l := range r.store {
		if date >= lo && date <= hi {
			logs = append(logs, cloneLog(l))
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})

	return logs, nil
}

// cloneLog keeps callers from mutating stored state through shared pointers.
func cloneLog(l *domain.DayLog) *domain.DayLog {
	c := *l
	if l.WeightKg != nil {
		w := *l.WeightKg
		c.WeightKg = &w
	}
	if l.FastingHours != nil {
		f := *l.FastingHours
		c.FastingHours = &f
	}
	return &c
}
