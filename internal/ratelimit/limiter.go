package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter throttles argument submissions per user per debate
type Limiter struct {
	rdb *redis.Client
	ctx context.Context
}

// NewLimiter creates a new Limiter instance
func NewLimiter() *Limiter {
	return &Limiter{
		rdb: GetRedisClient(),
		ctx: GetContext(),
	}
}

// Config defines rate limit rules
type Config struct {
	MaxArguments int           // per window
	Window       time.Duration // time window for submissions
}

// DefaultConfig returns default rate limit configuration
func DefaultConfig() Config {
	return Config{
		MaxArguments: 5,
		Window:       time.Minute,
	}
}

// AllowArgument checks if the user may submit another argument to the
// debate. Limiting is best-effort: without a Redis client it allows all.
func (l *Limiter) AllowArgument(debateID, userID string, config Config) (bool, error) {
	if l == nil || l.rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate:argument:%s:%s", debateID, userID)

	count, err := l.rdb.Get(l.ctx, key).Int()
	if err == redis.Nil {
		// First submission in the window
		return true, nil
	} else if err != nil {
		return false, err
	}

	if count >= config.MaxArguments {
		return false, nil
	}

	return true, nil
}

// RecordArgument records a submission for rate limiting
func (l *Limiter) RecordArgument(debateID, userID string, config Config) error {
	if l == nil || l.rdb == nil {
		return nil
	}

	key := fmt.Sprintf("rate:argument:%s:%s", debateID, userID)

	count, err := l.rdb.Incr(l.ctx, key).Result()
	if err != nil {
		return err
	}

	// Set expiration if first time
	if count == 1 {
		l.rdb.Expire(l.ctx, key, config.Window)
	}

	return nil
}
