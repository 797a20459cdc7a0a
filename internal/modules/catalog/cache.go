package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kivulounge/internal/domain"
	"kivulounge/internal/pkg/logger"
)

const roomsCacheKey = "catalog:rooms"

// RedisRoomCache caches the room listing in Redis. Every cache failure is
// treated as a miss so the catalog keeps serving from the database.
type RedisRoomCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoomCache(client *redis.Client, ttl time.Duration) *RedisRoomCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisRoomCache{client: client, ttl: ttl}
}

func (c *RedisRoomCache) GetRooms(ctx context.Context) ([]domain.Room, bool) {
	raw, err := c.client.Get(ctx, roomsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.ErrorLogger.Errorf("room cache read failed: %v", err)
		}
		return nil, false
	}

	var rooms []domain.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, false
	}
	return rooms, true
}

func (c *RedisRoomCache) SetRooms(ctx context.Context, rooms []domain.Room) {
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, roomsCacheKey, raw, c.ttl).Err(); err != nil {
		logger.ErrorLogger.Errorf("room cache write failed: %v", err)
	}
}

func (c *RedisRoomCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, roomsCacheKey).Err(); err != nil {
		logger.ErrorLogger.Errorf("room cache invalidation failed: %v", err)
	}
}
