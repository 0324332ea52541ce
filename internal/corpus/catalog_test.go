package corpus

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Resolve(t *testing.T) {
	c := DefaultCatalog("dicts")
	require.NoError(t, c.Validate())

	e, err := c.Resolve("tiny")
	require.NoError(t, err)
	assert.Equal(t, Entry{Name: "tiny", Path: "dicts/very_small_test_dictionary.txt"}, e)

	e, err = c.Resolve("3")
	require.NoError(t, err)
	assert.Equal(t, "eighth", e.Name)

	e, err = c.Resolve("0")
	require.NoError(t, err)
	assert.Equal(t, "full", e.Name)
}

func TestCatalog_Resolve_unknown(t *testing.T) {
	c := DefaultCatalog(".")
	for _, sel := range []string{"5", "-1", "huge", ""} {
		_, err := c.Resolve(sel)
		assert.ErrorIs(t, err, ErrUnknownCorpus, sel)
	}
	_, err := c.Resolve("huge")
	assert.Contains(t, errors.FlattenHints(err), "full, half, quarter, eighth, tiny")
}

func TestCatalog_Validate(t *testing.T) {
	assert.ErrorIs(t, Catalog{}.Validate(), ErrUnknownCorpus)
	assert.Error(t, Catalog{{Name: "a", Path: "a.txt"}, {Name: "a", Path: "b.txt"}}.Validate())
	assert.Error(t, Catalog{{Name: "a"}}.Validate())
	assert.NoError(t, Catalog{{Name: "a", Path: "a.txt"}}.Validate())
}
