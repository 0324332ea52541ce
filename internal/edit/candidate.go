package edit

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Candidates returns every distinct string at edit distance exactly 1 from word.
func Candidates(word string, alphabet Alphabet) mapset.Set[string] {
	w := []rune(word)
	set := mapset.NewSetWithSize[string](Bound(word, alphabet))
	buf := make([]rune, 0, len(w)+1)

	for i := range w {
		// Delete
		buf = append(append(buf[:0], w[:i]...), w[i+1:]...)
		set.Add(string(buf))

		// Substitute
		for _, r := range alphabet {
			if r == w[i] {
				continue
			}
			buf = append(buf[:0], w...)
			buf[i] = r
			set.Add(string(buf))
		}
	}

	// Insert
	for i := 0; i <= len(w); i++ {
		for _, r := range alphabet {
			buf = append(append(append(buf[:0], w[:i]...), r), w[i:]...)
			set.Add(string(buf))
		}
	}

	// distance to itself is 0
	set.Remove(word)
	return set
}

// Bound is the number of edits Candidates tries before collapsing duplicates.
func Bound(word string, alphabet Alphabet) int {
	l, k := len([]rune(word)), len(alphabet)
	return l + l*(k-1) + (l+1)*k
}

// IsAdjacent reports whether a and b are at Levenshtein distance exactly 1.
func IsAdjacent(a, b string) bool {
	long, short := []rune(a), []rune(b)
	if len(long) < len(short) {
		long, short = short, long
	}

	switch len(long) - len(short) {
	case 0:
		diff := 0
		for i := range long {
			if long[i] != short[i] {
				if diff++; diff > 1 {
					return false
				}
			}
		}
		return diff == 1
	case 1:
		i := 0
		for i < len(short) && long[i] == short[i] {
			i++
		}
		for ; i < len(short); i++ {
			if long[i+1] != short[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
