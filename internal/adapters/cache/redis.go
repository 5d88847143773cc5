package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis host was configured at all.
func (o Options) Enabled() bool {
	return o.Host != ""
}

func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

func NewRedisClient(opts Options) (*redis.Client, error) {
	poolSize := opts.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr(),
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     poolSize,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr(), err)
	}

	return rdb, nil
}
