package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// ErrProcessingTimeout means the service did not leave the processing state
// within the configured poll budget.
var ErrProcessingTimeout = errors.New("media processing did not finish in time")

// ProcessingError carries the failure message reported by the media service.
type ProcessingError struct {
	Message string
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("media processing failed: %s", e.Message)
}

// Upload sends the file to the remote service and polls its state at a
// fixed interval until it leaves the processing state. The poll count is
// bounded; an unbounded wait here would hang the whole action.
func (u *implUploader) Upload(ctx context.Context, path string) (*genai.File, error) {
	file, err := u.files.Upload(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	u.logger.Info(ctx, "Uploaded %s as %s, waiting for processing", path, file.Name)

	for polls := 0; file.State == genai.FileStateProcessing; polls++ {
		if polls >= u.maxPolls {
			return nil, ErrProcessingTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(u.pollInterval):
		}

		file, err = u.files.Get(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("poll media state: %w", err)
		}
	}

	if file.State == genai.FileStateFailed {
		msg := "Unknown error"
		if file.Error != nil && file.Error.Message != "" {
			msg = file.Error.Message
		}
		return nil, &ProcessingError{Message: msg}
	}

	u.logger.Info(ctx, "Media %s ready (state %s)", file.Name, file.State)
	return file, nil
}
