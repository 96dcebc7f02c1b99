package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/ports"
)

const statsTTL = 30 * time.Second

// StatsCache keeps per-user statistics in redis for a short window. It is
// strictly best effort: any redis failure is logged and reported as a miss.
type StatsCache struct {
	client *redis.Client
}

var _ ports.StatsCache = (*StatsCache)(nil)

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func statsKey(userID string) string {
	return "taskflow:stats:" + userID
}

func (c *StatsCache) Get(ctx context.Context, userID string) (domain.Stats, bool) {
	payload, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("stats cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
		return domain.Stats{}, false
	}

	var stats domain.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		zap.L().Warn("stats cache payload corrupt", zap.String("user_id", userID), zap.Error(err))
		return domain.Stats{}, false
	}
	return stats, true
}

func (c *StatsCache) Set(ctx context.Context, userID string, stats domain.Stats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(userID), payload, statsTTL).Err(); err != nil {
		zap.L().Warn("stats cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		zap.L().Warn("stats cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}
