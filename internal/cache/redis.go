package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"fitarena/internal/score"
	"fitarena/internal/xslog"
)

const breakdownKey = "fitarena:score:breakdown"

// NewClient dials Redis and verifies connectivity before returning.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

type redisScores struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *slog.Logger) Scores {
	return &redisScores{client: client, ttl: ttl, logger: logger}
}

func (c *redisScores) Get(ctx context.Context) (score.Breakdown, bool) {
	raw, err := c.client.Get(ctx, breakdownKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "score cache read failed", xslog.Error(err))
		}
		return score.Breakdown{}, false
	}

	var b score.Breakdown
	if err := go_json.Unmarshal(raw, &b); err != nil {
		c.logger.WarnContext(ctx, "score cache entry corrupt", xslog.Error(err))
		return score.Breakdown{}, false
	}
	return b, true
}

func (c *redisScores) Set(ctx context.Context, b score.Breakdown) {
	raw, err := go_json.Marshal(b)
	if err != nil {
		c.logger.WarnContext(ctx, "score cache encode failed", xslog.Error(err))
		return
	}
	if err := c.client.Set(ctx, breakdownKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "score cache write failed", xslog.Error(err))
	}
}

func (c *redisScores) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, breakdownKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "score cache invalidation failed", xslog.Error(err))
	}
}
