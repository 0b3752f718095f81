package infra_redis_voterset

import (
	"context"

	"github.com/go-redis/redis"
	"github.com/happydoodle/core/internal/model"
)

// Driver keeps the set of voter keys seen per room. Advisory only:
// the upsert in postgres is what actually keeps one vote per device.
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

func (d *Driver) Add(ctx context.Context, roomID model.RoomID, voterKey string) (seen bool, err error) {
	added, err := d.client.SAdd(d.fullKey(roomID), voterKey).Result()
	if err != nil {
		return false, err
	}
	return added == 0, nil
}

func (d *Driver) fullKey(roomID model.RoomID) string {
	return d.key + ":" + string(roomID)
}
