package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

var (
	_ domain.LogRepository  = (*CachedLogRepository)(nil)
	_ domain.LogRangeReader = (*CachedLogRepository)(nil)
)

const DefaultCacheTTL = 30 * time.Minute

// CachedLogRepository is a cache-aside decorator. Cache failures are logged and the
// call falls through to next; they never fail the request.
type CachedLogRepository struct {
	next   domain.LogRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedLogRepository(next domain.LogRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedLogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedLogRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedLogRepository) cacheKey(date string) string {
	return fmt.Sprintf("daylog:%s", date)
}

func (r *CachedLogRepository) invalidate(ctx context.Context, date string) {
	if err := r.cache.Del(ctx, r.cacheKey(date)).Err(); err != nil {
		r.logger.Warn("cache invalidation failed", zap.String("date", date), zap.Error(err))
	}
}

func (r *CachedLogRepository) GetByDate(ctx context.Context, date string) (*domain.DayLog, error) {
	key := r.cacheKey(date)

	val, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var log domain.DayLog
		if err := json.Unmarshal(val, &log); err == nil {
			return &log, nil
		}

		r.logger.Warn("corrupted cache entry, cleaning up", zap.String("key", key))
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	log, err := r.next.GetByDate(ctx, date)
	if err != nil || log == nil {
		return log, err
	}

	if data, err := json.Marshal(log); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}

	return log, nil
}

func (r *CachedLogRepository) Save(ctx context.Context, log *domain.DayLog) error {
	if err := r.next.Save(ctx, log); err != nil {
		return err
	}
	r.invalidate(ctx, log.Date)
	return nil
}

// ListBetween is not cached; heatmap reads go straight to the store.
func (r *CachedLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.DayLog, error) {
	if ranged, ok := r.next.(domain.LogRangeReader); ok {
		return ranged.ListBetween(ctx, from, to)
	}

	logs := []*domain.DayLog{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		l, err := r.GetByDate(ctx, domain.FormatDate(d))
		if err != nil {
			return nil, err
		}
		if l != nil {
			logs = append(logs, l)
		}
	}
	return logs, nil
}
