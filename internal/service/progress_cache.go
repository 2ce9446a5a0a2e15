package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"anoa.com/bskmtclub/internal/dto"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ProgressCache is an advisory Redis cache of assembled progress reports.
// It is never authoritative: every accrual and history write invalidates
// the entry, and a cache miss simply recomputes from the ledger.
type ProgressCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProgressCache(rdb *redis.Client, ttl time.Duration) *ProgressCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProgressCache{rdb: rdb, ttl: ttl}
}

func progressKey(userID uuid.UUID) string {
	return fmt.Sprintf("membership:progress:%s", userID.String())
}

func (c *ProgressCache) Get(ctx context.Context, userID uuid.UUID) (*dto.MembershipProgressResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, progressKey(userID)).Result()
	if err != nil {
		return nil, false
	}

	var report dto.MembershipProgressResponse
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (c *ProgressCache) Set(ctx context.Context, userID uuid.UUID, report *dto.MembershipProgressResponse) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, progressKey(userID), raw, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache progress for user %s: %v", userID, err)
	}
}

func (c *ProgressCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, progressKey(userID)).Err(); err != nil {
		log.Printf("Failed to invalidate progress cache for user %s: %v", userID, err)
	}
}
