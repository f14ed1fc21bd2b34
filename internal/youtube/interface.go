package youtube

import "context"

// TranscriptFetcher retrieves the transcript text for a YouTube video.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
