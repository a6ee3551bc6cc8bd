package cleaner

import (
	"fmt"
	"strings"
)

// DefaultPrompt asks the model to clean a transcript chunk. %s receives the chunk.
const DefaultPrompt = `You are cleaning one section of a raw meeting transcript.

Rules:
- Remove filler words (um, uh, like, you know), false starts and stutters
- Fix punctuation, capitalization and obvious transcription errors
- Keep every speaker label exactly as written (e.g. "John:", "Speaker 1:")
- Keep the original order, meaning and level of detail; do not summarize
- Keep paragraph breaks as blank lines
- Reply with the cleaned text only

Transcript section:
---
%s
---`

func buildPrompt(tmpl, chunk string) string {
	if tmpl == "" {
		tmpl = DefaultPrompt
	}
	if !strings.Contains(tmpl, "%s") {
		return tmpl + "\n\n" + chunk
	}
	return fmt.Sprintf(tmpl, chunk)
}
