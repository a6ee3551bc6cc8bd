package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultReportPatterns match status/report lines a cleaning agent tends to
// wrap around its output. Matched case-insensitively against the trimmed line.
var DefaultReportPatterns = []string{
	`^Transcript Cleaning Complete`,
	`^Input:`,
	`^Output:`,
	`^Word Count Analysis:`,
	`^Status:`,
	`^Quality improvements`,
	`^Content preserved:`,
	`^Original:.*words`,
	`^Cleaned:.*words`,
	`^Reduction:.*%`,
	`^WARNING:`,
	`^===`,
}

// Sanitizer strips report lines from raw cleaning agent output. It is a
// best-effort filter: a content line that looks like a report line is removed too.
type Sanitizer struct {
	patterns []*regexp.Regexp
}

// NewSanitizer compiles the default patterns plus any extra ones.
func NewSanitizer(extra ...string) (*Sanitizer, error) {
	all := make([]string, 0, len(DefaultReportPatterns)+len(extra))
	all = append(all, DefaultReportPatterns...)
	all = append(all, extra...)

	s := &Sanitizer{patterns: make([]*regexp.Regexp, 0, len(all))}
	for _, p := range all {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("compile report pattern %q: %w", p, err)
		}
		s.patterns = append(s.patterns, re)
	}
	return s, nil
}

// DefaultSanitizer returns a sanitizer with only the built-in patterns.
func DefaultSanitizer() *Sanitizer {
	s, err := NewSanitizer()
	if err != nil {
		panic(err)
	}
	return s
}

// Sanitize drops every report line and trims the result. All other lines,
// blank ones included, are kept in order.
func (s *Sanitizer) Sanitize(raw string) string {
	raw = reNewline.ReplaceAllString(raw, "\n")
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if s.isReport(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func (s *Sanitizer) isReport(line string) bool {
	for _, re := range s.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
