package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Tokenizer splits a command line into tokens using the platform's rules.
// A nil result with nil error is a valid empty command line.
type Tokenizer interface {
	Split(commandLine string) ([]string, error)
}

// TokenizerFunc adapts a function to Tokenizer.
type TokenizerFunc func(commandLine string) ([]string, error)

// Split implements Tokenizer.
func (f TokenizerFunc) Split(commandLine string) ([]string, error) { return f(commandLine) }

// PathNormalizer canonicalizes a path, failing when it does not resolve.
type PathNormalizer interface {
	Normalize(path string) (string, error)
}

// PathNormalizerFunc adapts a function to PathNormalizer.
type PathNormalizerFunc func(path string) (string, error)

// Normalize implements PathNormalizer.
func (f PathNormalizerFunc) Normalize(path string) (string, error) { return f(path) }

// FSNormalizer resolves a path to an absolute path with symbolic links
// evaluated and relative segments removed. The path must exist.
type FSNormalizer struct{}

// Normalize implements PathNormalizer.
func (FSNormalizer) Normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &NormalizationError{Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &NormalizationError{Path: path, Err: err}
	}
	return resolved, nil
}

// WorkingDir returns the current directory of the process.
type WorkingDir func() (string, error)

// DefaultWorkingDir is os.Getwd.
var DefaultWorkingDir WorkingDir = os.Getwd

func wrapTokenizerError(err error) error {
	return fmt.Errorf("%w: %w", ErrTokenizer, err)
}
