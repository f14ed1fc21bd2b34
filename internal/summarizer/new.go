package summarizer

import (
	"google.golang.org/genai"

	"github.com/ayush078/content-sumarizer/internal/logger"
)

type implAgent struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates an Agent over a long-lived Gemini client. The client is
// constructed once at startup and shared for the process lifetime.
func New(client *genai.Client, model string, log logger.Logger) Agent {
	return &implAgent{
		client: client,
		model:  model,
		logger: log,
	}
}
