package utils

// ValidDayOfMonth reports whether d can serve as a statement closing or
// payment due day. Days 29-31 are accepted; month arithmetic clamps them
// when a month is shorter.
func ValidDayOfMonth(d int) bool {
	return d >= 1 && d <= 31
}

// ValidHexColor reports whether s is a #rrggbb color value
func ValidHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
