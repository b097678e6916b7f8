package assistant

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by a Session. Each is wrapped together with the
// underlying cause, so errors.Is identifies the kind and Error() still
// carries the raw service message.
var (
	ErrMissingInput = errors.New("missing input")
	ErrAuth         = errors.New("API key is invalid")
	ErrFetchEmpty   = errors.New("no data found in the specified range")
	ErrModel        = errors.New("model call failed")
	ErrInvalidReply = errors.New("AI response doesn't include valid data")
	ErrWriteBack    = errors.New("write-back failed")
)

func missing(msg string) error {
	return fmt.Errorf("%w: %s", ErrMissingInput, msg)
}

func wrap(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
