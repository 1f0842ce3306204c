package app

import (
	"errors"
	"unicode/utf16"
)

var errNotExist = errors.New("no such file or directory")

func encodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
