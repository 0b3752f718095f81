package infra_redis_linkcache

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/happydoodle/core/internal/model"
)

// Driver remembers the most recent battle link per room. The TTL keeps
// abandoned rooms from pinning memory; an expired entry only costs the
// "latest battle" shortcut.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Set(ctx context.Context, roomID model.RoomID, url string, ttl time.Duration) error {
	return d.client.Set(d.fullKey(roomID), url, ttl).Err()
}

// Get returns empty when no link was published within the TTL.
func (d *Driver) Get(ctx context.Context, roomID model.RoomID) (string, error) {
	url, err := d.client.Get(d.fullKey(roomID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

func (d *Driver) fullKey(roomID model.RoomID) string {
	return d.key + ":" + string(roomID)
}
