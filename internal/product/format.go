package product

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// leadingDimension matches a digit run at the start of a normalized format
// followed by one of the dimension separators.
var leadingDimension = regexp.MustCompile(`^(\d+)[x×*]`)

// Format is the parsed form of a product format such as "472X1166X122".
type Format struct {
	// Digits is the leading digit run, empty when the format has no
	// "number + separator" prefix.
	Digits string
	// Leading is the integer value of Digits. HasLeading is false when
	// there is no prefix or the run does not fit in an int.
	Leading    int
	HasLeading bool
	// Rest is the normalized text after the separator, or the whole
	// normalized string when there is no prefix.
	Rest string
}

// Normalize removes every whitespace character and lower-cases s.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}

// ParseFormat normalizes s and extracts its leading dimension. Only ASCII
// digits 0-9 form the leading run; other Unicode digits do not.
func ParseFormat(s string) Format {
	norm := Normalize(s)
	loc := leadingDimension.FindStringSubmatchIndex(norm)
	if loc == nil {
		return Format{Rest: norm}
	}

	f := Format{
		Digits: norm[loc[2]:loc[3]],
		Rest:   norm[loc[1]:],
	}
	if n, err := strconv.Atoi(f.Digits); err == nil {
		f.Leading = n
		f.HasLeading = true
	}
	return f
}

// HasPrefix reports whether the format starts with "number + separator".
func (f Format) HasPrefix() bool {
	return f.Digits != ""
}

// MatchesLeading reports whether the leading digit run equals query.
// The comparison is on the text, so "0472" does not match "472".
func (f Format) MatchesLeading(query string) bool {
	return f.HasPrefix() && f.Digits == query
}
