package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every configuration grammar error.
var ErrInvalidConfig = errors.New("invalid config file")

// ErrInvalidTape is matched by every tape grammar error.
var ErrInvalidTape = errors.New("invalid tape file")

// ErrEmptyInput is returned when a configuration or tape file has no content.
var ErrEmptyInput = errors.New("file is empty")

// ErrMissingFile is matched by MissingFileError.
var ErrMissingFile = errors.New("file not found")

// ErrNotYetRun is returned when a result is queried before the machine halted.
var ErrNotYetRun = errors.New("machine has not been run")

// ErrTapeTooLarge is matched by TapeLimitError.
var ErrTapeTooLarge = errors.New("tape too large")

// ErrRunNotFound is returned when a run record cannot be found in a store.
var ErrRunNotFound = errors.New("run not found")

// ConfigFormatError reports a configuration line that does not follow the grammar.
type ConfigFormatError struct {
	Line   int    // 1-based
	Text   string // literal line content
	Reason string
}

func (e *ConfigFormatError) Error() string {
	return fmt.Sprintf("line %d is invalid: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *ConfigFormatError) Unwrap() error { return ErrInvalidConfig }

// MissingDirectiveError reports a mandatory directive that never appeared.
type MissingDirectiveError struct {
	Directive string
}

func (e *MissingDirectiveError) Error() string {
	return fmt.Sprintf("missing mandatory directive %q", e.Directive)
}

func (e *MissingDirectiveError) Unwrap() error { return ErrInvalidConfig }

// TapeFormatError reports a tape cell that is not an integer.
type TapeFormatError struct {
	Cell int // 0-based
	Text string
}

func (e *TapeFormatError) Error() string {
	return fmt.Sprintf("can't parse cell nb %d: %q", e.Cell, e.Text)
}

func (e *TapeFormatError) Unwrap() error { return ErrInvalidTape }

// MissingFileError reports an input path that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }

// TapeLimitError reports an initial tape that needs more cells than the caller allows.
type TapeLimitError struct {
	Cells int // cells required by the offset and the tape file
	Max   int
}

func (e *TapeLimitError) Error() string {
	return fmt.Sprintf("initial tape needs %d cells, limit is %d", e.Cells, e.Max)
}

func (e *TapeLimitError) Unwrap() error { return ErrTapeTooLarge }
