package app

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the resolution pipeline.
// Every kind is terminal for the invocation that produced it.
var (
	ErrInvalidInput           = errors.New("invalid program path")
	ErrNoExtension            = errors.New("program path has no extension")
	ErrNoAssociation          = errors.New("no file type association")
	ErrStoreInconsistent      = errors.New("association changed between queries")
	ErrEmptyTemplate          = errors.New("command template is empty")
	ErrUnsupportedPlaceholder = errors.New("unsupported placeholder")
	ErrNormalization          = errors.New("path normalization failed")
	ErrTokenizer              = errors.New("command line tokenizer failed")

	// ErrBufferTooSmall is returned by an AssociationStore fill query when the
	// value no longer fits the buffer sized by the length query.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// UnsupportedPlaceholderError reports a two-character %X code with no expansion rule.
type UnsupportedPlaceholderError struct {
	Designator rune
}

func (e *UnsupportedPlaceholderError) Error() string {
	return fmt.Sprintf("unsupported shell substitution %%%c", e.Designator)
}

// Unwrap returns ErrUnsupportedPlaceholder so callers can use errors.Is.
func (e *UnsupportedPlaceholderError) Unwrap() error { return ErrUnsupportedPlaceholder }

// StoreError carries a store-reported status code verbatim.
type StoreError struct {
	Key  string
	Code uint32
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("association query for %q failed: 0x%08X", e.Key, e.Code)
}

// NormalizationError wraps the failure to canonicalize a program path.
type NormalizationError struct {
	Path string
	Err  error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("failed to normalize %q: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *NormalizationError) Unwrap() []error { return []error{ErrNormalization, e.Err} }
