package youtube

import "regexp"

// videoIDPattern matches the 11-character video ID in the common YouTube URL
// shapes: watch?v=ID, embed/ID, v/ID, youtu.be/ID, and paths with an
// arbitrary segment before the ID.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID pulls a video ID out of a YouTube URL. First match wins;
// the ID is not checked against an existing video.
func ExtractVideoID(url string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
