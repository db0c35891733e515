package listing

import (
	"strings"
	"unicode"
)

const hashBase = 31

// locationKey reduces raw location text to a 32-bit bucket key: the
// text is lower-cased, whitespace is dropped, and the remaining runes
// are folded through a polynomial rolling hash with base 31, wrapping
// mod 2^32. "New York" and "new  york" land in the same bucket, and so
// can two unrelated strings that happen to collide. The bucket, not
// the exact location string, is the unit of grouping.
func locationKey(location string) uint32 {
	var h uint32
	for _, r := range strings.ToLower(location) {
		if unicode.IsSpace(r) {
			continue
		}
		h = hashBase*h + uint32(r)
	}
	return h
}
