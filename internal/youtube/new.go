package youtube

import (
	"net/http"
	"time"

	"github.com/ayush078/content-sumarizer/internal/logger"
)

const defaultWatchBase = "https://www.youtube.com/watch?v="

type implFetcher struct {
	httpClient *http.Client
	watchBase  string
	language   string
	logger     logger.Logger
}

// New creates a TranscriptFetcher targeting the given caption language.
func New(language string, log logger.Logger) TranscriptFetcher {
	return &implFetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		watchBase:  defaultWatchBase,
		language:   language,
		logger:     log,
	}
}

// NewWithClient creates a TranscriptFetcher with a custom HTTP client and
// watch page base URL. Used by tests.
func NewWithClient(language string, client *http.Client, watchBase string, log logger.Logger) TranscriptFetcher {
	return &implFetcher{
		httpClient: client,
		watchBase:  watchBase,
		language:   language,
		logger:     log,
	}
}
