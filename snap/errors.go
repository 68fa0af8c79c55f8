package snap

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is wrapped by every empty-input error.
var ErrEmptyInput = errors.New("empty input")

var (
	// ErrEmptyNetwork means there is no edge to project onto.
	ErrEmptyNetwork = fmt.Errorf("%w: network has no edges", ErrEmptyInput)
	// ErrEmptyTrace means there is no point to match.
	ErrEmptyTrace = fmt.Errorf("%w: trace has no points", ErrEmptyInput)
)
