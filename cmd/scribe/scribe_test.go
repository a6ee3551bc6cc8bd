package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := fmt.Sprintf(`
cleaner:
  provider: identity
sink:
  type: filesystem
  dir: %s
paths:
  input: %s
  output: %s
  archived: %s
logging:
  level: error
`, filepath.Join(dir, "chunks"), filepath.Join(dir, "inbox"), filepath.Join(dir, "out"), filepath.Join(dir, "archived"))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func paragraph(tag string, n int) string {
	return strings.TrimSpace(strings.Repeat(tag+" ", n))
}

func TestChunkThenReassembleFromFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	raw := filepath.Join(dir, "raw.txt")
	doc := strings.Join([]string{paragraph("one", 400), paragraph("two", 400), paragraph("three", 400)}, "\n\n")
	require.NoError(t, os.WriteFile(raw, []byte(doc), 0644))

	out, err := execute(t, "--config", configPath, "chunk", raw, "20260115-0930")
	require.NoError(t, err)
	assert.Contains(t, out, "CHUNK_COUNT=3\n")

	var chunkFiles []string
	for _, line := range strings.Split(out, "\n") {
		if f, ok := strings.CutPrefix(line, "CHUNK_FILE="); ok {
			chunkFiles = append(chunkFiles, f)
		}
	}
	require.Len(t, chunkFiles, 3)
	assert.Equal(t, filepath.Join(dir, "chunks", "meeting-chunk-20260115-0930-001.md"), chunkFiles[0])

	// Pretend an agent cleaned each chunk and left a report line behind.
	var cleaned []string
	for i, f := range chunkFiles {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		path := filepath.Join(dir, fmt.Sprintf("cleaned-%d.md", i+1))
		require.NoError(t, os.WriteFile(path, []byte("Status: complete\n"+string(data)), 0644))
		cleaned = append(cleaned, path)
	}

	final := filepath.Join(dir, "final.md")
	args := append([]string{"--config", configPath, "reassemble", final, "20260115-0930", "--from-files"}, cleaned...)
	out, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "OUTPUT: "+final)

	got, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, doc, string(got))

	for _, f := range chunkFiles {
		assert.NoFileExists(t, f)
	}
}

func TestReassembleFewerOutputsThanStaged(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	raw := filepath.Join(dir, "raw.txt")
	doc := strings.Join([]string{paragraph("one", 400), paragraph("two", 400), paragraph("three", 400)}, "\n\n")
	require.NoError(t, os.WriteFile(raw, []byte(doc), 0644))

	_, err := execute(t, "--config", configPath, "chunk", raw, "r9")
	require.NoError(t, err)

	chunkFile := func(i int) string {
		return filepath.Join(dir, "chunks", fmt.Sprintf("meeting-chunk-r9-%03d.md", i))
	}

	final := filepath.Join(dir, "final.md")
	_, err = execute(t, "--config", configPath, "reassemble", final, "r9", "--from-files", chunkFile(1), chunkFile(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing output for chunk 3")
	assert.NoFileExists(t, final)
	assert.FileExists(t, chunkFile(3))
}

func TestReassembleLiteralMissingChunk(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	_, err := execute(t, "--config", configPath, "reassemble", filepath.Join(dir, "final.md"), "r1", "first", "  ", "third")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing output for chunk 2")
	assert.NoFileExists(t, filepath.Join(dir, "final.md"))
}

func TestReassembleUnreadableFileIsMissing(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	ok := filepath.Join(dir, "ok.md")
	require.NoError(t, os.WriteFile(ok, []byte("fine"), 0644))

	_, err := execute(t, "--config", configPath, "reassemble", filepath.Join(dir, "final.md"), "r1",
		"--from-files", ok, filepath.Join(dir, "gone.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 2")
}

func TestRunWritesCleanedTranscript(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir)

	raw := filepath.Join(dir, "standup.txt")
	require.NoError(t, os.WriteFile(raw, []byte("Ann: hello\r\n\r\nBen: bye\r\n"), 0644))

	out, err := execute(t, "--config", configPath, "run", raw)
	require.NoError(t, err)

	dest := filepath.Join(dir, "out", "standup.md")
	assert.Contains(t, out, "OUTPUT: "+dest)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Ann: hello\n\nBen: bye", string(got))
	assert.FileExists(t, raw)
}

func TestChunkMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", writeConfig(t, dir), "chunk", filepath.Join(dir, "nope.txt"), "r1")
	assert.Error(t, err)
}

func TestChunkRequiresArgs(t *testing.T) {
	_, err := execute(t, "chunk", "only-one")
	assert.Error(t, err)
}
