package dispatch

import (
	"context"
	"fmt"
)

// InputKind is the tagged variant over the three supported input kinds.
// Adding a kind means extending the dispatcher's switch, checked at compile
// time through the exhaustive default branch.
type InputKind int

const (
	KindVideoFile InputKind = iota
	KindYouTubeURL
	KindWebsiteURL
)

func (k InputKind) String() string {
	switch k {
	case KindVideoFile:
		return "video"
	case KindYouTubeURL:
		return "youtube"
	case KindWebsiteURL:
		return "website"
	default:
		return "unknown"
	}
}

// ParseInputKind maps a form value to an InputKind.
func ParseInputKind(s string) (InputKind, error) {
	switch s {
	case "video":
		return KindVideoFile, nil
	case "youtube":
		return KindYouTubeURL, nil
	case "website":
		return KindWebsiteURL, nil
	default:
		return 0, fmt.Errorf("unknown input kind %q", s)
	}
}

// Request is one user-initiated summarization action. Exactly one of
// FilePath or URL is meaningful, selected by Kind.
type Request struct {
	Kind        InputKind
	FilePath    string
	URL         string
	Instruction string
}

// Dispatcher runs the extractor matching the input kind, builds one prompt
// and invokes the remote agent exactly once.
type Dispatcher interface {
	Summarize(ctx context.Context, req Request) (string, error)
}
