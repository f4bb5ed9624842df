package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cyclonesb/schedule-builder/pkg/config"
)

const (
	defaultHost = "localhost"
	defaultPort = 6379

	// Session state is read on nearly every request; a slow store should
	// surface as an error quickly, not stall the request path.
	opTimeout   = 2 * time.Second
	pingTimeout = 5 * time.Second
)

// NewRedis dials the session store and verifies it is reachable.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	port := cfg.Port
	if port <= 0 {
		port = defaultPort
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping session store: %w", err)
	}

	return client, nil
}
