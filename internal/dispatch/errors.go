package dispatch

import "errors"

// Category classifies a failed action for the presentation layer.
type Category int

const (
	// CategoryInputInvalid covers malformed URLs and empty instructions.
	CategoryInputInvalid Category = iota
	// CategoryExtractionFailed covers transcript, fetch and parse failures.
	CategoryExtractionFailed
	// CategoryRemoteMediaFailed means the media processing service failed.
	CategoryRemoteMediaFailed
	// CategoryRemoteCallFailed means the summarization call itself failed.
	CategoryRemoteCallFailed
)

var (
	ErrEmptyInstruction = errors.New("instruction is empty")
	ErrInvalidURL       = errors.New("no video ID in URL")
)

// Error carries a failure category and a user-facing message. Every failure
// is terminal for the current action; nothing is retried.
type Error struct {
	Category Category
	Message  string
	Err      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError reports whether err carries a dispatch classification.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
