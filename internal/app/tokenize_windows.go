//go:build windows

package app

import "golang.org/x/sys/windows"

// NewTokenizer returns the CommandLineToArgvW splitter.
func NewTokenizer() Tokenizer {
	return TokenizerFunc(func(commandLine string) ([]string, error) {
		args, err := windows.DecomposeCommandLine(commandLine)
		if err != nil {
			return nil, wrapTokenizerError(err)
		}
		return args, nil
	})
}
