package webpage

import "context"

// Extractor fetches a web page and reduces it to plain visible text.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}
