package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Summarize invokes the model exactly once, synchronously, with no retry.
// For video input the processed file handle is attached alongside the
// prompt text.
func (a *implAgent) Summarize(ctx context.Context, prompt string, file *genai.File) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if file != nil {
		parts = append(parts, genai.NewPartFromURI(file.URI, file.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, generationConfig())
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// generationConfig equips the model with web search so it can ground
// answers about content that references current events or external pages.
func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}
