package cleaner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	gotInput string
	gotName  string
	gotArgs  []string
	out      string
	err      error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteWithInput(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	f.gotInput, f.gotName, f.gotArgs = input, name, args
	return f.out, f.err
}

func TestIdentity(t *testing.T) {
	out, err := NewIdentity().Clean(context.Background(), "Ann: hi")
	require.NoError(t, err)
	assert.Equal(t, "Ann: hi", out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewIdentity().Clean(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommand(t *testing.T) {
	exec := &fakeExecutor{out: "Status: ok\ncleaned"}
	c := NewCommand(exec, "agent", "-p", "clean")

	out, err := c.Clean(context.Background(), "raw chunk")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\ncleaned", out)
	assert.Equal(t, "raw chunk", exec.gotInput)
	assert.Equal(t, "agent", exec.gotName)
	assert.Equal(t, []string{"-p", "clean"}, exec.gotArgs)
	assert.Equal(t, "command:agent", c.Name())

	exec.err = errors.New("exit status 1")
	_, err = c.Clean(context.Background(), "raw chunk")
	assert.Error(t, err)
}

func newTestGemini(t *testing.T, keys []string, gen generateFunc) *geminiCleaner {
	t.Helper()
	c, err := NewGemini(keys, "gemini-2.5-flash", "", logger.Nop())
	require.NoError(t, err)
	g := c.(*geminiCleaner)
	g.generate = gen
	return g
}

func TestGeminiRotatesOnRateLimit(t *testing.T) {
	var mu sync.Mutex
	var used []string
	g := newTestGemini(t, []string{"k1", "k2"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		mu.Lock()
		used = append(used, key)
		mu.Unlock()
		if key == "k1" {
			return "", errors.New("Error 429: RESOURCE_EXHAUSTED")
		}
		return "cleaned", nil
	})

	out, err := g.Clean(context.Background(), "chunk")
	require.NoError(t, err)
	assert.Equal(t, "cleaned", out)
	assert.Equal(t, []string{"k1", "k2"}, used)

	// Rotation sticks for the next call.
	_, err = g.Clean(context.Background(), "chunk")
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2", "k2"}, used)
}

func TestGeminiExhausted(t *testing.T) {
	g := newTestGemini(t, []string{"k1", "k2"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	_, err := g.Clean(context.Background(), "chunk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all API keys exhausted")
}

func TestGeminiFatalError(t *testing.T) {
	calls := 0
	g := newTestGemini(t, []string{"k1", "k2"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		calls++
		return "", errors.New("invalid argument")
	})
	_, err := g.Clean(context.Background(), "chunk")
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGeminiPrompt(t *testing.T) {
	var got string
	g := newTestGemini(t, []string{"k"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		got = prompt
		return "ok", nil
	})
	_, err := g.Clean(context.Background(), "Ann: um hello")
	require.NoError(t, err)
	assert.Contains(t, got, "---\nAnn: um hello\n---")
}

func TestBuildPromptWithoutPlaceholder(t *testing.T) {
	assert.Equal(t, "Clean this:\n\nbody", buildPrompt("Clean this:", "body"))
}

func TestNew(t *testing.T) {
	exec := &fakeExecutor{}
	tests := []struct {
		name    string
		cfg     config.CleanerConfig
		want    string
		wantErr bool
	}{
		{"gemini", config.CleanerConfig{Provider: "gemini", Model: "m", APIKeys: []string{"k"}}, "gemini:m", false},
		{"gemini without keys", config.CleanerConfig{Provider: "gemini"}, "", true},
		{"command", config.CleanerConfig{Provider: "command", Command: "agent"}, "command:agent", false},
		{"identity", config.CleanerConfig{Provider: "identity"}, "identity", false},
		{"unknown", config.CleanerConfig{Provider: "other"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg, exec, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}
}
