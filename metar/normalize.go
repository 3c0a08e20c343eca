package metar

import "strings"

// normalizeDigits fixes the O-for-0 OCR confusion inside a substring that is
// expected to be entirely numeric (spec.md §4.2, §9). It must only be applied
// to slices already known to be digit positions — never globally — or
// genuine letters get mangled.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'O' {
			return '0'
		}
		return r
	}, s)
}

// normalizePrefix fixes known letter-prefix OCR confusions: a leading digit
// 0 misread where a letter O belongs (0VC -> OVC), and digit/letter swaps in
// the automated-station code (A01 -> AO1, A02 -> AO2).
func normalizePrefix(s string) string {
	switch {
	case strings.HasPrefix(s, "0VC"):
		return "O" + s[1:]
	case strings.HasPrefix(s, "A01"):
		return "AO1" + s[3:]
	case strings.HasPrefix(s, "A02"):
		return "AO2" + s[3:]
	case strings.HasPrefix(s, "SCK"):
		return "SKC" + s[3:]
	default:
		return s
	}
}
