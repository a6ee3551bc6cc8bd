package transcript

// Pack groups segments greedily into chunks. A chunk closes as soon as it
// reaches TargetWords, or before a segment that would push it past
// TargetWords*Overflow once it already holds MinWords. An undersized chunk
// always takes the next segment, however large, so nothing is ever dropped.
// The final chunk may be smaller than MinWords.
func Pack(segments []Segment, opts PackOptions) []Chunk {
	opts = opts.withDefaults()
	limit := float64(opts.TargetWords) * opts.Overflow

	var (
		chunks  []Chunk
		current []Segment
		words   int
	)
	emit := func() {
		chunks = append(chunks, Chunk{
			Index:    len(chunks) + 1,
			Segments: current,
			Words:    words,
		})
		current = nil
		words = 0
	}

	for _, seg := range segments {
		if words > 0 && float64(words+seg.Words) > limit && words >= opts.MinWords {
			emit()
		}
		current = append(current, seg)
		words += seg.Words

		if words >= opts.TargetWords {
			emit()
		}
	}
	if len(current) > 0 {
		emit()
	}
	return chunks
}

func (o PackOptions) withDefaults() PackOptions {
	def := DefaultPackOptions()
	if o.TargetWords <= 0 {
		o.TargetWords = def.TargetWords
	}
	if o.MinWords < 0 {
		o.MinWords = def.MinWords
	}
	if o.Overflow < 1 {
		o.Overflow = def.Overflow
	}
	return o
}
