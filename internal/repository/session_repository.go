package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
)

const sessionKeyPrefix = "session:"

// SessionRepository persists per-session state in Redis with a sliding TTL.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRepository{client: client, ttl: ttl, logger: logger}
}

// Get loads session state. A missing or expired session yields ErrCacheMiss.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	if r.client == nil {
		return nil, appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get session %s: %w", sessionID, err)
	}

	state := &models.SessionState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", sessionID, err)
	}
	return state, nil
}

// Save stores session state and refreshes its TTL.
func (r *SessionRepository) Save(ctx context.Context, sessionID string, state *models.SessionState) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sessionID, err)
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+sessionID, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", sessionID, err)
	}
	return nil
}

// Delete removes a session entirely.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", sessionID, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *SessionRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
