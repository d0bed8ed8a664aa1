package word

import "strings"

// CompareLengthLex orders finite words by length first and lexicographically
// among words of equal length. It returns -1, 0 or +1.
func CompareLengthLex(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return strings.Compare(a, b)
	}
}
