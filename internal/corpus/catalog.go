package corpus

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
)

var ErrUnknownCorpus = errors.New("unknown corpus")

// Entry names a word list and where to read it from.
type Entry struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// Catalog is the ordered list of selectable word lists.
type Catalog []Entry

// DefaultCatalog returns the standard word lists from the largest to the smallest.
func DefaultCatalog(dir string) Catalog {
	return Catalog{
		{Name: "full", Path: filepath.Join(dir, "dictionary.txt")},
		{Name: "half", Path: filepath.Join(dir, "half_dictionary.txt")},
		{Name: "quarter", Path: filepath.Join(dir, "quarter_dictionary.txt")},
		{Name: "eighth", Path: filepath.Join(dir, "eighth_dictionary.txt")},
		{Name: "tiny", Path: filepath.Join(dir, "very_small_test_dictionary.txt")},
	}
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, e := range c {
		names = append(names, e.Name)
	}
	return names
}

func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.Wrap(ErrUnknownCorpus, "no corpus is configured")
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	for i, e := range c {
		if e.Name == "" || e.Path == "" {
			return errors.Newf("corpus #%d: name and path are required", i)
		}
		if !seen.Add(e.Name) {
			return errors.Newf("duplicate corpus name: %s", e.Name)
		}
	}
	return nil
}

// Resolve finds an entry by name or by zero-based index.
func (c Catalog) Resolve(selector string) (Entry, error) {
	selector = strings.TrimSpace(selector)
	for _, e := range c {
		if e.Name == selector {
			return e, nil
		}
	}
	if i, err := strconv.Atoi(selector); err == nil && 0 <= i && i < len(c) {
		return c[i], nil
	}
	err := errors.Wrapf(ErrUnknownCorpus, "%q", selector)
	return Entry{}, errors.WithHintf(err, "choose one of %s or an index from 0 to %d", strings.Join(c.Names(), ", "), len(c)-1)
}
