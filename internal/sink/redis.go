package sink

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisSink struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis stores a run as two hashes, <prefix>:<run>:chunks and
// <prefix>:<run>:cleaned, keyed by chunk index. Both expire after ttl.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) Sink {
	if prefix == "" {
		prefix = "meeting-chunk"
	}
	return &redisSink{client: client, prefix: prefix, ttl: ttl}
}

func (s *redisSink) key(runID, kind string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, runID, kind)
}

func (s *redisSink) PutChunk(ctx context.Context, runID string, index int, text string) (Handle, error) {
	key := s.key(runID, "chunks")
	if err := s.hset(ctx, key, index, text); err != nil {
		return "", fmt.Errorf("save chunk %d: %w", index, err)
	}
	return Handle(key + "#" + strconv.Itoa(index)), nil
}

func (s *redisSink) Chunk(ctx context.Context, runID string, index int) (string, error) {
	return s.hget(ctx, s.key(runID, "chunks"), index)
}

func (s *redisSink) PutCleaned(ctx context.Context, runID string, index int, raw string) error {
	if err := s.hset(ctx, s.key(runID, "cleaned"), index, raw); err != nil {
		return fmt.Errorf("save cleaned chunk %d: %w", index, err)
	}
	return nil
}

func (s *redisSink) Cleaned(ctx context.Context, runID string, index int) (string, error) {
	return s.hget(ctx, s.key(runID, "cleaned"), index)
}

func (s *redisSink) Cleanup(ctx context.Context, runID string) (int, error) {
	chunks := s.key(runID, "chunks")
	cleaned := s.key(runID, "cleaned")

	pipe := s.client.TxPipeline()
	nChunks := pipe.HLen(ctx, chunks)
	nCleaned := pipe.HLen(ctx, cleaned)
	pipe.Del(ctx, chunks, cleaned)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("cleanup run %s: %w", runID, err)
	}
	return int(nChunks.Val() + nCleaned.Val()), nil
}

func (s *redisSink) hset(ctx context.Context, key string, index int, value string) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(index), value)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisSink) hget(ctx context.Context, key string, index int) (string, error) {
	v, err := s.client.HGet(ctx, key, strconv.Itoa(index)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotAvailable
	}
	if err != nil {
		return "", fmt.Errorf("read %s[%d]: %w", key, index, err)
	}
	return v, nil
}
