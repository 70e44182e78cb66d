package redisadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
)

// Cache implements the permission cache port on top of a shared redis client.
// TTL is enforced by redis expiry, so the now parameter is unused here.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, role entities.Role, _ time.Time) ([]valueobjects.Permission, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(role)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get permissions: %w", err)
	}

	var items []valueobjects.Permission
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode cached permissions: %w", err)
	}
	return items, true, nil
}

func (c *Cache) Set(ctx context.Context, role entities.Role, permissions []valueobjects.Permission, expiresAt time.Time) error {
	payload, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("encode permissions: %w", err)
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := c.client.Set(ctx, cacheKey(role), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set permissions: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, role entities.Role) error {
	if err := c.client.Del(ctx, cacheKey(role)).Err(); err != nil {
		return fmt.Errorf("redis del permissions: %w", err)
	}
	return nil
}

func cacheKey(role entities.Role) string {
	return "access-control:permissions:" + role.String()
}
