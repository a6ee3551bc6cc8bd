package transcript

import "strings"

// Reassemble sanitizes the cleaned outputs of chunks 1..total and joins the
// non-empty ones in index order. Every index must have a raw output with
// some non-whitespace text, otherwise a *ChunkMissingError lists the gaps;
// a whitespace-only output counts as missing too. A chunk that
// sanitizes to nothing is skipped with a warning; if all of them do, the
// result is ErrReassemblyEmpty.
func Reassemble(total int, outputs map[int]string, s *Sanitizer) (*Document, error) {
	if s == nil {
		s = DefaultSanitizer()
	}
	if total <= 0 {
		return nil, ErrNoChunks
	}

	var missing []int
	for i := 1; i <= total; i++ {
		if strings.TrimSpace(outputs[i]) == "" {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, &ChunkMissingError{Indices: missing}
	}

	doc := &Document{}
	sections := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		text := s.Sanitize(outputs[i])
		if text == "" {
			doc.Warnings = append(doc.Warnings, Warning{
				Kind:       WarnSanitizedEmpty,
				ChunkIndex: i,
				Message:    "empty after extraction",
			})
			continue
		}
		words := CountWords(text)
		doc.Chunks = append(doc.Chunks, ChunkStat{Index: i, Words: words})
		doc.TotalWords += words
		sections = append(sections, text)
	}
	if len(sections) == 0 {
		return nil, ErrReassemblyEmpty
	}

	doc.Text = strings.Join(sections, Separator)
	return doc, nil
}
