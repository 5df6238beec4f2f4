package domain

import (
	"cmp"
	"strconv"
	"strings"
)

// LevelPrefix starts every canonical level label.
const LevelPrefix = "Level "

// FormatLevel returns the canonical label for level n.
func FormatLevel(n int) string {
	return LevelPrefix + strconv.Itoa(n)
}

// LevelNumber returns n for a canonical "Level n" label with positive n.
func LevelNumber(label string) (int, bool) {
	rest, ok := strings.CutPrefix(label, LevelPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 || strconv.Itoa(n) != rest {
		return 0, false
	}
	return n, true
}

// CompareLevels orders canonical labels numerically and places any
// non-canonical label after them, ordered lexicographically.
func CompareLevels(a, b string) int {
	na, aok := LevelNumber(a)
	nb, bok := LevelNumber(b)
	switch {
	case aok && bok:
		return cmp.Compare(na, nb)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
