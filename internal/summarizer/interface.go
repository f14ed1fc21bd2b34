package summarizer

import (
	"context"

	"google.golang.org/genai"
)

// Agent sends a single prompt, optionally accompanied by a processed media
// file, to the remote model and returns its textual response.
type Agent interface {
	Summarize(ctx context.Context, prompt string, file *genai.File) (string, error)
}
