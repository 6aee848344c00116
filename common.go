package der

/*
common.go contains small helpers shared by multiple files throughout
this package, aliased the way the teacher's own common.go aliases
strconv/strings/unicode functions to short package-level vars so the
decode hot path never reaches for fmt.
*/

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	itoa   func(int) string           = strconv.Itoa
	hasPfx func(string, string) bool  = strings.HasPrefix
	trimS  func(string) string        = strings.TrimSpace
	isCtrl func(rune) bool            = unicode.IsControl
	utf8OK func(string) bool          = utf8.ValidString
)

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

// allZero reports whether every byte in b is zero.
func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
