package candidate

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/guestradar/guestradar/internal/platform/constants"
	"github.com/guestradar/guestradar/internal/platform/ctxutil"
)

// RedisStatsCache stores the aggregated dashboard statistics under a single
// short-TTL key. Every error path is a cache miss: the service falls back to
// recomputing from the repository.
type RedisStatsCache struct {
	client *redis.Client
}

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

func (cache *RedisStatsCache) GetStats(context context.Context) (*Stats, bool) {
	payload, err := cache.client.Get(context, constants.RedisKeyCandidateStats).Bytes()
	if err != nil {
		return nil, false
	}

	stats := &Stats{}
	if err := json.Unmarshal(payload, stats); err != nil {
		// Unreadable entry: drop it so the next write starts clean.
		cache.InvalidateStats(context)
		return nil, false
	}

	return stats, true
}

func (cache *RedisStatsCache) SetStats(context context.Context, stats *Stats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := cache.client.Set(context, constants.RedisKeyCandidateStats, payload, constants.CandidateStatsTTL).Err(); err != nil {
		ctxutil.GetLogger(context).Debug("stats_cache_write_failed", slog.Any("error", err))
	}
}

func (cache *RedisStatsCache) InvalidateStats(context context.Context) {
	if err := cache.client.Del(context, constants.RedisKeyCandidateStats).Err(); err != nil {
		ctxutil.GetLogger(context).Debug("stats_cache_invalidate_failed", slog.Any("error", err))
	}
}
