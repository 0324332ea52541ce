package edit

import (
	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
)

var ErrInvalidAlphabet = errors.New("invalid alphabet")

// Alphabet is the ordered set of symbols used for substitutions and insertions.
type Alphabet []rune

// Lowercase is the 26 lowercase ASCII letters.
var Lowercase = Alphabet("abcdefghijklmnopqrstuvwxyz")

func NewAlphabet(s string) (Alphabet, error) {
	if s == "" {
		return nil, errors.Wrap(ErrInvalidAlphabet, "no symbols")
	}
	seen := mapset.NewThreadUnsafeSet[rune]()
	for _, r := range s {
		if !seen.Add(r) {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "duplicate symbol %q", r)
		}
	}
	return Alphabet(s), nil
}

func (a Alphabet) Contains(r rune) bool {
	for _, s := range a {
		if s == r {
			return true
		}
	}
	return false
}

// Accepts reports whether every rune of word is a symbol of a.
func (a Alphabet) Accepts(word string) bool {
	for _, r := range word {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

func (a Alphabet) String() string {
	return string(a)
}
