package schema

/*
common.go aliases the handful of strconv/strings helpers this package's
struct-tag parser needs to short package-level vars, matching the
teacher's own common.go convention (see asn1plus's common.go) of never
reaching for fmt on a hot path. Tag parsing here is not hot, but the
texture is kept consistent with the rest of the module.
*/

import (
	"strconv"
	"strings"
)

var (
	atoi   func(string) (int, error) = strconv.Atoi
	lc     func(string) string       = strings.ToLower
	trimS  func(string) string       = strings.TrimSpace
	hasPfx func(string, string) bool = strings.HasPrefix
	trimPfx func(string, string) string = strings.TrimPrefix
	split  func(string, string) []string = strings.Split
)

func strInSlice(s string, list []string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
