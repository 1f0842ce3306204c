package app

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FindExtension returns the association lookup key for a program path: the
// text from the last "." to the end, dot included. The result is not checked
// for plausibility; "dir.d/file" yields ".d/file" just as the shell would look it up.
func FindExtension(program string) (string, error) {
	if strings.ContainsRune(program, 0) || !utf8.ValidString(program) {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, program)
	}
	dot := strings.LastIndexByte(program, '.')
	if dot < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, program)
	}
	return program[dot:], nil
}
