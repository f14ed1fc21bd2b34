package dispatch

import (
	"github.com/ayush078/content-sumarizer/internal/logger"
	"github.com/ayush078/content-sumarizer/internal/media"
	"github.com/ayush078/content-sumarizer/internal/summarizer"
	"github.com/ayush078/content-sumarizer/internal/webpage"
	"github.com/ayush078/content-sumarizer/internal/youtube"
)

type implDispatcher struct {
	transcripts     youtube.TranscriptFetcher
	webpages        webpage.Extractor
	uploader        media.Uploader
	agent           summarizer.Agent
	maxContentChars int
	logger          logger.Logger
}

// New creates a Dispatcher wired to the three extractors and the agent.
func New(
	transcripts youtube.TranscriptFetcher,
	webpages webpage.Extractor,
	uploader media.Uploader,
	agent summarizer.Agent,
	maxContentChars int,
	log logger.Logger,
) Dispatcher {
	return &implDispatcher{
		transcripts:     transcripts,
		webpages:        webpages,
		uploader:        uploader,
		agent:           agent,
		maxContentChars: maxContentChars,
		logger:          log,
	}
}
