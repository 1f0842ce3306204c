//go:build !windows

package app

import "github.com/google/shlex"

// NewTokenizer returns a POSIX shell-style word splitter.
func NewTokenizer() Tokenizer {
	return TokenizerFunc(func(commandLine string) ([]string, error) {
		args, err := shlex.Split(commandLine)
		if err != nil {
			return nil, wrapTokenizerError(err)
		}
		return args, nil
	})
}
