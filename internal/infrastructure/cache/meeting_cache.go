package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MeetingCache is a cache-aside store for meeting aggregates. All operations
// are best-effort: a broken cache degrades to database reads, never to
// request failures.
type MeetingCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewMeetingCache creates a meeting aggregate cache
func NewMeetingCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *MeetingCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MeetingCache{rdb: rdb, ttl: ttl, logger: logger}
}

func aggregateKey(meetingID string) string {
	return "meeting:aggregate:" + meetingID
}

// Get loads a cached aggregate into v, reporting whether it was present
func (c *MeetingCache) Get(ctx context.Context, meetingID string, v interface{}) bool {
	raw, err := c.rdb.Get(ctx, aggregateKey(meetingID)).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("cache read failed", zap.String("meeting_id", meetingID), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		if c.logger != nil {
			c.logger.Warn("cache entry corrupt, dropping", zap.String("meeting_id", meetingID), zap.Error(err))
		}
		c.Invalidate(ctx, meetingID)
		return false
	}
	return true
}

// Set stores the aggregate with the configured TTL
func (c *MeetingCache) Set(ctx context.Context, meetingID string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("cache marshal failed", zap.String("meeting_id", meetingID), zap.Error(err))
		}
		return
	}
	if err := c.rdb.Set(ctx, aggregateKey(meetingID), raw, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("cache write failed", zap.String("meeting_id", meetingID), zap.Error(err))
	}
}

// Invalidate drops the aggregate entry for a meeting
func (c *MeetingCache) Invalidate(ctx context.Context, meetingID string) {
	if err := c.rdb.Del(ctx, aggregateKey(meetingID)).Err(); err != nil && c.logger != nil {
		c.logger.Warn("cache invalidation failed", zap.String("meeting_id", meetingID), zap.Error(err))
	}
}
