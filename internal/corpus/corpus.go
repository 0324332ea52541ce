package corpus

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/wordlink/internal/edit"
	"github.com/spf13/afero"
)

// Corpus is the set of unique words under analysis.
// It is read-only once built.
type Corpus struct {
	words mapset.Set[string]
}

func New(words ...string) *Corpus {
	c := &Corpus{words: mapset.NewSetWithSize[string](len(words))}
	for _, w := range words {
		c.words.Add(Normalize(w))
	}
	return c
}

// Normalize trims the line terminator and surrounding spaces and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (c *Corpus) Contains(word string) bool {
	return c.words.Contains(word)
}

func (c *Corpus) Len() int {
	return c.words.Cardinality()
}

// Each calls fn for every word until fn returns true.
func (c *Corpus) Each(fn func(word string) bool) {
	c.words.Each(fn)
}

// Words returns the words in sorted order.
func (c *Corpus) Words() []string {
	return mapset.Sorted(c.words)
}

// Read builds a Corpus from one word per line.
// Blank lines and words with symbols outside alphabet are skipped.
func Read(r io.Reader, alphabet edit.Alphabet) (*Corpus, error) {
	c := New()
	s := bufio.NewScanner(r)
	line := 0
	skipped := 0
	for s.Scan() {
		line++
		w := Normalize(s.Text())
		if w == "" {
			continue
		}
		if !alphabet.Accepts(w) {
			slog.Debug("skip word outside alphabet", "word", w, "line", line)
			skipped++
			continue
		}
		c.words.Add(w)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", line+1)
	}
	if skipped > 0 {
		slog.Warn("skipped words outside alphabet", "count", skipped, "alphabet", alphabet.String())
	}
	return c, nil
}

// Load reads the word list at path.
func Load(fs afero.Fs, path string, alphabet edit.Alphabet) (*Corpus, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open corpus %s", path)
	}
	defer f.Close()

	c, err := Read(f, alphabet)
	if err != nil {
		return nil, errors.Wrapf(err, "load corpus %s", path)
	}
	slog.Debug("corpus loaded", "path", path, "words", c.Len())
	return c, nil
}
