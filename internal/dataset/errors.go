package dataset

import (
	"errors"
	"fmt"
)

// Input failure kinds. An *InputFileError matches exactly one of these via errors.Is.
var (
	ErrInputMissing    = errors.New("input file not found")
	ErrInputEmpty      = errors.New("input file is empty")
	ErrInputMalformed  = errors.New("input file is malformed")
	ErrInputTooLarge   = errors.New("input file too large")
	ErrInputUnreadable = errors.New("input file unreadable")
)

// InputFileError reports a failure to load the input dataset.
type InputFileError struct {
	Path string
	Kind error // one of the ErrInput* sentinels
	Err  error // underlying cause, may be nil
}

func (e *InputFileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	if errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *InputFileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func inputErr(path string, kind, err error) *InputFileError {
	if err == kind {
		err = nil
	}
	return &InputFileError{Path: path, Kind: kind, Err: err}
}

// kindOf picks the input failure kind carried by err, defaulting to malformed.
func kindOf(err error) error {
	for _, kind := range []error{ErrInputEmpty, ErrInputTooLarge, ErrInputMissing, ErrInputUnreadable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInputMalformed
}

// ErrOutputWrite is matched by every *OutputFileError.
var ErrOutputWrite = errors.New("output write failed")

// OutputFileError reports a failure to write the output dataset. No partial
// file is left at Path when it is returned.
type OutputFileError struct {
	Path string
	Err  error
}

func (e *OutputFileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrOutputWrite, e.Path, e.Err)
}

func (e *OutputFileError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrOutputWrite}
	}
	return []error{ErrOutputWrite, e.Err}
}
