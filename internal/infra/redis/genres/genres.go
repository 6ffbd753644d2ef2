package infra_genre_cache

import (
	"encoding/json"
	"time"

	"github.com/cinematch/core/internal/model"
	"github.com/go-redis/redis"
)

// Driver caches the per-kind genre list. Genre ids are stable upstream, so
// the TTL is purely about catalog renames.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Get(kind model.MediaKind) ([]model.Genre, error) {
	raw, err := d.client.Get(d.getFullKey(kind)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var genres []model.Genre
	if err := json.Unmarshal([]byte(raw), &genres); err != nil {
		return nil, err
	}

	return genres, nil
}

func (d *Driver) Set(kind model.MediaKind, genres []model.Genre) error {
	raw, err := json.Marshal(genres)
	if err != nil {
		return err
	}

	return d.client.Set(d.getFullKey(kind), string(raw), d.ttl).Err()
}

func (d *Driver) getFullKey(kind model.MediaKind) string {
	return d.key + ":" + string(kind)
}
