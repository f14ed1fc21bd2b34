package media

import (
	"time"

	"google.golang.org/genai"

	"github.com/ayush078/content-sumarizer/internal/logger"
)

type implUploader struct {
	files        FileService
	pollInterval time.Duration
	maxPolls     int
	logger       logger.Logger
}

// New creates an Uploader backed by the Gemini Files API.
func New(client *genai.Client, pollInterval time.Duration, maxPolls int, log logger.Logger) Uploader {
	return NewWithService(&genaiFileService{client: client}, pollInterval, maxPolls, log)
}

// NewWithService creates an Uploader over a custom FileService. Used by tests.
func NewWithService(files FileService, pollInterval time.Duration, maxPolls int, log logger.Logger) Uploader {
	return &implUploader{
		files:        files,
		pollInterval: pollInterval,
		maxPolls:     maxPolls,
		logger:       log,
	}
}
