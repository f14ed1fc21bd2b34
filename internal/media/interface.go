package media

import (
	"context"

	"google.golang.org/genai"
)

// Uploader pushes a local video file to the Gemini Files API and waits for
// the service to finish processing it.
type Uploader interface {
	Upload(ctx context.Context, path string) (*genai.File, error)
}

// FileService is the narrow slice of the Files API the uploader needs.
// Tests substitute a fake to drive state transitions.
type FileService interface {
	Upload(ctx context.Context, path string) (*genai.File, error)
	Get(ctx context.Context, name string) (*genai.File, error)
}
