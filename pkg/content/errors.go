package content

import (
	"errors"
)

var (
	ErrMissingCredential = errors.New("missing api credential")
	ErrUnknownGenerator  = errors.New("unknown generator")

	ErrTransport          = errors.New("completion request failed")
	ErrUnparseableContent = errors.New("unparseable completion output")
	ErrIncompleteContent  = errors.New("incomplete content")
)
