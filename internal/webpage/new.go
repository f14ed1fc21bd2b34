package webpage

import (
	"net/http"
	"time"

	"github.com/ayush078/content-sumarizer/internal/logger"
)

// userAgent is a browser-like identification header; some sites refuse
// requests without one.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type implExtractor struct {
	httpClient *http.Client
	logger     logger.Logger
}

// New creates an Extractor with the given fetch timeout.
func New(timeout time.Duration, log logger.Logger) Extractor {
	return &implExtractor{
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// NewWithClient creates an Extractor using a custom HTTP client. Used by tests.
func NewWithClient(client *http.Client, log logger.Logger) Extractor {
	return &implExtractor{
		httpClient: client,
		logger:     log,
	}
}
