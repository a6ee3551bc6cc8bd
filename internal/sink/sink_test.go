package sink

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisSink(t *testing.T) (Sink, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, "test", time.Hour), mr
}

func sinks(t *testing.T) map[string]Sink {
	t.Helper()
	fs, err := NewFilesystem(t.TempDir(), "")
	require.NoError(t, err)
	rs, _ := newRedisSink(t)
	return map[string]Sink{
		"filesystem": fs,
		"memory":     NewMemory(),
		"redis":      rs,
	}
}

func TestSinkContract(t *testing.T) {
	ctx := context.Background()
	for name, s := range sinks(t) {
		t.Run(name, func(t *testing.T) {
			h, err := s.PutChunk(ctx, "run1", 1, "Ann: hello")
			require.NoError(t, err)
			assert.NotEmpty(t, h)

			text, err := s.Chunk(ctx, "run1", 1)
			require.NoError(t, err)
			assert.Equal(t, "Ann: hello", text)

			_, err = s.Cleaned(ctx, "run1", 1)
			assert.ErrorIs(t, err, ErrNotAvailable)

			require.NoError(t, s.PutCleaned(ctx, "run1", 1, "Status: ok\nAnn: hello."))
			raw, err := s.Cleaned(ctx, "run1", 1)
			require.NoError(t, err)
			assert.Equal(t, "Status: ok\nAnn: hello.", raw)

			_, err = s.PutChunk(ctx, "run2", 1, "other run")
			require.NoError(t, err)

			removed, err := s.Cleanup(ctx, "run1")
			require.NoError(t, err)
			assert.Equal(t, 2, removed)

			_, err = s.Chunk(ctx, "run1", 1)
			assert.ErrorIs(t, err, ErrNotAvailable)
			other, err := s.Chunk(ctx, "run2", 1)
			require.NoError(t, err)
			assert.Equal(t, "other run", other)
		})
	}
}

func TestSinkConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	for name, s := range sinks(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 1; i <= 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					assert.NoError(t, s.PutCleaned(ctx, "par", i, "text"))
				}(i)
			}
			wg.Wait()
			for i := 1; i <= 20; i++ {
				_, err := s.Cleaned(ctx, "par", i)
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilesystemNaming(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFilesystem(dir, "meeting-chunk")
	require.NoError(t, err)

	h, err := s.PutChunk(context.Background(), "20260101-0900", 7, "x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "meeting-chunk-20260101-0900-007.md"), string(h))

	// Files of a run whose id extends this one are left alone.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meeting-chunk-20260101-0900-b-001.md"), []byte("y"), 0644))
	removed, err := s.Cleanup(context.Background(), "20260101-0900")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.FileExists(t, filepath.Join(dir, "meeting-chunk-20260101-0900-b-001.md"))
}

func TestRedisTTL(t *testing.T) {
	s, mr := newRedisSink(t)
	_, err := s.PutChunk(context.Background(), "ttl", 1, "x")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("test:ttl:chunks"))

	mr.FastForward(2 * time.Hour)
	_, err = s.Chunk(context.Background(), "ttl", 1)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		cfg     config.SinkConfig
		wantErr bool
	}{
		{"filesystem", config.SinkConfig{Type: "filesystem", Dir: t.TempDir()}, false},
		{"memory", config.SinkConfig{Type: "memory"}, false},
		{"redis", config.SinkConfig{Type: "redis", Redis: config.RedisConfig{Addr: mr.Addr(), TTLMinutes: 5}}, false},
		{"unknown", config.SinkConfig{Type: "s3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, closeFn, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer closeFn()
			_, err = s.PutChunk(context.Background(), "r", 1, "x")
			assert.NoError(t, err)
		})
	}
}
