package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ayush078/content-sumarizer/internal/media"
	"github.com/ayush078/content-sumarizer/internal/summarizer"
	"github.com/ayush078/content-sumarizer/internal/youtube"
)

// Summarize validates the request, runs the extractor for the selected
// input kind and calls the agent once with a single assembled prompt.
func (d *implDispatcher) Summarize(ctx context.Context, req Request) (string, error) {
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return "", &Error{
			Category: CategoryInputInvalid,
			Message:  "Please enter a question or ensure a predefined prompt is selected.",
			Err:      ErrEmptyInstruction,
		}
	}

	switch req.Kind {
	case KindVideoFile:
		return d.summarizeVideo(ctx, req.FilePath, instruction)
	case KindYouTubeURL:
		return d.summarizeYouTube(ctx, req.URL, instruction)
	case KindWebsiteURL:
		return d.summarizeWebsite(ctx, req.URL, instruction)
	default:
		return "", &Error{
			Category: CategoryInputInvalid,
			Message:  fmt.Sprintf("Unsupported input kind %q.", req.Kind),
		}
	}
}

func (d *implDispatcher) summarizeVideo(ctx context.Context, path, instruction string) (string, error) {
	file, err := d.uploader.Upload(ctx, path)
	if err != nil {
		var procErr *media.ProcessingError
		if errors.As(err, &procErr) {
			return "", &Error{
				Category: CategoryRemoteMediaFailed,
				Message:  fmt.Sprintf("Video processing failed. Error: %s", procErr.Message),
				Err:      err,
			}
		}
		return "", &Error{
			Category: CategoryRemoteMediaFailed,
			Message:  fmt.Sprintf("An error occurred during video file analysis: %v", err),
			Err:      err,
		}
	}

	d.logger.Info(ctx, "Video processed, requesting analysis")
	return d.callAgent(ctx, summarizer.VideoPrompt(instruction), file)
}

func (d *implDispatcher) summarizeYouTube(ctx context.Context, url, instruction string) (string, error) {
	videoID, ok := youtube.ExtractVideoID(url)
	if !ok {
		return "", &Error{
			Category: CategoryInputInvalid,
			Message:  "Invalid YouTube URL. Please enter a valid URL.",
			Err:      ErrInvalidURL,
		}
	}

	transcript, err := d.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return "", &Error{
			Category: CategoryExtractionFailed,
			Message:  transcriptFailureMessage(err),
			Err:      err,
		}
	}
	if strings.TrimSpace(transcript) == "" {
		return "", &Error{
			Category: CategoryExtractionFailed,
			Message:  "No transcript found for this video. It might be a music video, very short, or processing.",
		}
	}

	d.logger.Info(ctx, "Fetched transcript for %s (%d chars)", videoID, len(transcript))
	return d.callAgent(ctx, summarizer.TranscriptPrompt(instruction, transcript), nil)
}

func (d *implDispatcher) summarizeWebsite(ctx context.Context, url, instruction string) (string, error) {
	content, err := d.webpages.Extract(ctx, url)
	if err != nil {
		return "", &Error{
			Category: CategoryExtractionFailed,
			Message:  fmt.Sprintf("Error fetching website content: %v", err),
			Err:      err,
		}
	}
	if strings.TrimSpace(content) == "" {
		return "", &Error{
			Category: CategoryExtractionFailed,
			Message:  "Could not extract meaningful content from the website. It might be a very dynamic page or access is restricted.",
		}
	}

	d.logger.Info(ctx, "Extracted %d chars from website", len(content))
	return d.callAgent(ctx, summarizer.WebsitePrompt(instruction, content, d.maxContentChars), nil)
}

func (d *implDispatcher) callAgent(ctx context.Context, prompt string, file *genai.File) (string, error) {
	response, err := d.agent.Summarize(ctx, prompt, file)
	if err != nil {
		return "", &Error{
			Category: CategoryRemoteCallFailed,
			Message:  fmt.Sprintf("Error during summarization: %v", err),
			Err:      err,
		}
	}
	return response, nil
}

func transcriptFailureMessage(err error) string {
	switch {
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		return "Transcripts are disabled for this video."
	case errors.Is(err, youtube.ErrNoTranscript):
		return "No transcript found for this video. It might be a music video, very short, or processing."
	default:
		return fmt.Sprintf("Could not retrieve transcript: %v", err)
	}
}
