package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campusbook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache stores availability projections in Redis under a per-facility+date
// revision counter. Writes bump the revision, so a successful booking write
// is never followed by a stale projection; entries for old revisions simply
// age out via TTL. All cache failures degrade to a recompute.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{Client: client, TTL: ttl, Logger: logger}
}

func revisionKey(facilityID, date string) string {
	return fmt.Sprintf("avail:rev:%s:%s", facilityID, date)
}

func dayKey(facilityID, date string, rev int64, dayStart, dayEnd int) string {
	return fmt.Sprintf("avail:day:%s:%s:%d:%d-%d", facilityID, date, rev, dayStart, dayEnd)
}

func (c *Cache) revision(ctx context.Context, facilityID, date string) int64 {
	rev, err := c.Client.Get(ctx, revisionKey(facilityID, date)).Int64()
	if err != nil && err != redis.Nil {
		c.Logger.Warn("availability cache revision read failed", zap.Error(err))
		return -1
	}
	return rev
}

// GetDay returns a cached projection for the current revision, or nil.
func (c *Cache) GetDay(ctx context.Context, facilityID, date string, dayStart, dayEnd int) *models.DayAvailability {
	rev := c.revision(ctx, facilityID, date)
	if rev < 0 {
		return nil
	}
	raw, err := c.Client.Get(ctx, dayKey(facilityID, date, rev, dayStart, dayEnd)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.Logger.Warn("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	var day models.DayAvailability
	if err := json.Unmarshal(raw, &day); err != nil {
		c.Logger.Warn("availability cache entry corrupt", zap.Error(err))
		return nil
	}
	return &day
}

// SetDay stores a projection under the current revision.
func (c *Cache) SetDay(ctx context.Context, day models.DayAvailability, dayStart, dayEnd int) {
	rev := c.revision(ctx, day.FacilityID, day.Date)
	if rev < 0 {
		return
	}
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	key := dayKey(day.FacilityID, day.Date, rev, dayStart, dayEnd)
	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		c.Logger.Warn("availability cache write failed", zap.Error(err))
	}
}

// Bump invalidates cached projections for a facility+date by advancing the
// revision. Called by the booking write path after a successful mutation.
func (c *Cache) Bump(ctx context.Context, facilityID, date string) {
	if err := c.Client.Incr(ctx, revisionKey(facilityID, date)).Err(); err != nil {
		c.Logger.Warn("availability cache bump failed",
			zap.String("facilityId", facilityID), zap.String("date", date), zap.Error(err))
	}
}
