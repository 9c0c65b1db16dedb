// Package format turns catalog codes into display labels.
package format

import (
	"strings"
	"unicode"
)

// Applied in order; "us" matches anywhere in the code, not only as a suffix.
var regionWordBreaks = []struct{ old, new string }{
	// Must stay first: without it "southeastasia" renders as "Southeast Asia"
	// instead of the required "South East Asia".
	{"southeast", "south east"},
	{"india", " india"},
	{"us", " us"},
	{"europe", " europe"},
	{"asia", " asia"},
}

// RegionName converts a region code such as "southindia" into "South India".
// "eastus" renders as "East Us": each token is title-cased, so acronyms are not kept.
func RegionName(region string) string {
	for _, r := range regionWordBreaks {
		region = strings.ReplaceAll(region, r.old, r.new)
	}
	return titleWords(region)
}

// titleWords upper-cases the first letter of each whitespace-separated token and
// lower-cases the rest. Whitespace is preserved.
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			start = true
			b.WriteRune(r)
		case start:
			start = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
