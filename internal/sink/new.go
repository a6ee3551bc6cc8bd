package sink

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds the Sink selected by cfg. The returned close func releases
// any connection the sink holds.
func New(cfg config.SinkConfig) (Sink, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case "", "filesystem":
		s, err := NewFilesystem(cfg.Dir, cfg.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case "memory":
		return NewMemory(), noop, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := time.Duration(cfg.Redis.TTLMinutes) * time.Minute
		return NewRedis(client, cfg.Prefix, ttl), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported sink type %q", cfg.Type)
	}
}
