package transcript

import (
	"regexp"
	"strings"
)

var (
	reNewline     = regexp.MustCompile(`\r\n|\r`)
	reParagraph   = regexp.MustCompile(`\n\s*\n`)
	reSpeakerLine = regexp.MustCompile(`^[A-Z][^:\n]{0,30}:`)
)

// IsSpeakerLabel reports whether line opens a speaker turn, e.g. "John:" or "Speaker 1:".
func IsSpeakerLabel(line string) bool {
	return reSpeakerLine.MatchString(strings.TrimLeft(line, " \t"))
}

// SpeakerLabel splits a labelled line into its label (colon included) and the rest.
func SpeakerLabel(line string) (label, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	loc := reSpeakerLine.FindStringIndex(trimmed)
	if loc == nil {
		return "", line, false
	}
	return trimmed[:loc[1]], trimmed[loc[1]:], true
}

// Split breaks a document into paragraphs, then breaks every paragraph that
// carries speaker labels into one segment per turn. Empty segments are dropped.
func Split(document string) []Segment {
	document = reNewline.ReplaceAllString(document, "\n")

	var segments []Segment
	for _, para := range reParagraph.Split(document, -1) {
		for _, piece := range splitTurns(para) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			segments = append(segments, Segment{Text: piece, Words: CountWords(piece)})
		}
	}
	return segments
}

// splitTurns cuts a paragraph at every speaker label line. Text before the
// first label stays a piece of its own.
func splitTurns(para string) []string {
	lines := strings.Split(para, "\n")

	var (
		pieces  []string
		current []string
	)
	for _, line := range lines {
		if IsSpeakerLabel(line) && len(current) > 0 {
			pieces = append(pieces, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		pieces = append(pieces, strings.Join(current, "\n"))
	}
	return pieces
}
