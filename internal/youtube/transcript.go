package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrTranscriptsDisabled means the video has captions turned off entirely.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	// ErrNoTranscript means no caption track exists in the target language.
	ErrNoTranscript = errors.New("no transcript found for this video")
)

// captionTrack is the slice of the player response we care about.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
}

type timedText struct {
	XMLName  xml.Name `xml:"transcript"`
	Segments []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch retrieves the transcript for a video ID. It prefers a manually
// authored caption track in the target language and falls back to an
// auto-generated one. Single attempt, no caching.
func (f *implFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	body, err := f.get(ctx, f.watchBase+videoID)
	if err != nil {
		return "", fmt.Errorf("fetch watch page: %w", err)
	}

	tracks, err := parseCaptionTracks(body)
	if err != nil {
		return "", err
	}

	track, ok := selectTrack(tracks, f.language)
	if !ok {
		return "", ErrNoTranscript
	}

	raw, err := f.get(ctx, track.BaseURL)
	if err != nil {
		return "", fmt.Errorf("fetch caption track: %w", err)
	}

	return joinSegments(raw)
}

func (f *implFetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseCaptionTracks locates the caption track list embedded in the watch
// page's player response. A missing tracklist renderer means captions are
// disabled; an empty track list means none exist.
func parseCaptionTracks(body string) ([]captionTrack, error) {
	if !strings.Contains(body, `"playerCaptionsTracklistRenderer"`) {
		return nil, ErrTranscriptsDisabled
	}

	arr, ok := extractJSONArray(body, `"captionTracks":`)
	if !ok {
		return nil, ErrNoTranscript
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(arr), &tracks); err != nil {
		return nil, fmt.Errorf("parse caption tracks: %w", err)
	}
	if len(tracks) == 0 {
		return nil, ErrNoTranscript
	}
	return tracks, nil
}

// selectTrack prefers a manual track in the target language over a
// generated ("asr") one.
func selectTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	for _, t := range tracks {
		if matchesLanguage(t.LanguageCode, language) && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if matchesLanguage(t.LanguageCode, language) && t.Kind == "asr" {
			return t, true
		}
	}
	return captionTrack{}, false
}

// matchesLanguage treats regional variants ("en-GB") as matching their base
// language ("en").
func matchesLanguage(code, language string) bool {
	return code == language || strings.HasPrefix(code, language+"-")
}

// extractJSONArray returns the JSON array immediately following key,
// balancing brackets while skipping string literals.
func extractJSONArray(s, key string) (string, bool) {
	i := strings.Index(s, key)
	if i < 0 {
		return "", false
	}
	s = s[i+len(key):]

	depth := 0
	inString := false
	escaped := false
	for j := 0; j < len(s); j++ {
		c := s[j]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:j+1], true
			}
		}
	}
	return "", false
}

// joinSegments parses timedtext XML and concatenates segment texts with
// single spaces.
func joinSegments(raw string) (string, error) {
	var doc timedText
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return "", fmt.Errorf("parse timedtext: %w", err)
	}

	parts := make([]string, 0, len(doc.Segments))
	for _, seg := range doc.Segments {
		text := html.UnescapeString(seg.Text)
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "), nil
}
