package summarizer

import (
	"fmt"
	"unicode/utf8"
)

// TruncationMarker is appended when website content exceeds the character
// budget.
const TruncationMarker = "... [content truncated]"

// PromptOption is a named instruction template from the fixed catalog.
type PromptOption struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Options returns the instruction catalog: four fixed templates plus a
// free-form custom entry.
func Options() []PromptOption {
	return []PromptOption{
		{Name: "General Summary", Text: "Provide a concise summary of the content in about 100 words."},
		{Name: "Key Points", Text: "List the key points or main takeaways from the content."},
		{Name: "Explain Simply", Text: "Explain the main topic of the content in simple terms."},
		{Name: "Actionable Insights", Text: "What are the actionable insights from this content?"},
		{Name: "Custom Prompt", Text: ""},
	}
}

const videoPromptTemplate = `Analyze the uploaded video for content and context.
Respond to the following query: %s

Provide a detailed, user-friendly, and actionable response.`

const transcriptPromptTemplate = `You are provided with a transcript from a YouTube video.
Based on this transcript, respond to the following query: %s

Transcript:
%s

Provide a detailed, user-friendly, and actionable summary or response.`

const websitePromptTemplate = `You are provided with text content extracted from a website.
Based on this content, respond to the following query: %s

Website Content:
%s

Provide a detailed, user-friendly, and actionable summary or response.`

// VideoPrompt builds the analysis prompt for an uploaded video; the video
// itself travels as a separate file part.
func VideoPrompt(query string) string {
	return fmt.Sprintf(videoPromptTemplate, query)
}

// TranscriptPrompt builds the prompt for a YouTube transcript.
func TranscriptPrompt(query, transcript string) string {
	return fmt.Sprintf(transcriptPromptTemplate, query, transcript)
}

// WebsitePrompt builds the prompt for extracted website text, truncating
// the content at maxChars characters (runes, not bytes) with a marker. Truncation rather than chunking is
// deliberate, matching the documented single-prompt behavior.
func WebsitePrompt(query, content string, maxChars int) string {
	if maxChars > 0 && utf8.RuneCountInString(content) > maxChars {
		runes := []rune(content)
		content = string(runes[:maxChars]) + TruncationMarker
	}
	return fmt.Sprintf(websitePromptTemplate, query, content)
}
