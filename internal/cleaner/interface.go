package cleaner

import "context"

// Cleaner cleans one chunk of transcript text. The returned text is untrusted:
// it may carry status or report lines around the cleaned body.
type Cleaner interface {
	Clean(ctx context.Context, chunk string) (string, error)
	Name() string
}
