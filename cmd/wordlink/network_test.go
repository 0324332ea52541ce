package main

import (
	"testing"

	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/filter"
	"github.com/haijima/wordlink/internal/graph"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runNetwork_size(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("format", "size")
	v.Set("depth", -1)

	err := runNetwork(cmd, v, afero.NewOsFs(), []string{"FIST", "listy", "litany"})
	require.NoError(t, err)
	assert.Equal(t, "5\n5\n1\n", buf.String())
}

func Test_runNetwork_list(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("format", "list")
	v.Set("depth", -1)

	err := runNetwork(cmd, v, afero.NewOsFs(), []string{"fist"})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "network_fist_list", buf.Bytes())
}

func Test_runNetwork_bfs(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("format", "list")
	v.Set("depth", -1)
	v.Set("traversal", "bfs")
	v.Set("workers", 2)

	err := runNetwork(cmd, v, afero.NewOsFs(), []string{"listy"})
	require.NoError(t, err)
	assert.Equal(t, "fish\nfist\nlisp\nlist\nlisty\n", buf.String())
}

func Test_runNetwork_eighth(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("corpus", "3")
	v.Set("format", "list")
	v.Set("depth", -1)

	err := runNetwork(cmd, v, afero.NewOsFs(), []string{"groundwood"})
	require.NoError(t, err)
	assert.Equal(t, "groundwood\ngroundwoods\n", buf.String())
}

func Test_runNetwork_depthAndFilter(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("format", "list")
	v.Set("depth", 1)

	require.NoError(t, runNetwork(cmd, v, afero.NewOsFs(), []string{"fish"}))
	assert.Equal(t, "fish\nfist\n", buf.String())

	buf.Reset()
	v.Set("depth", -1)
	v.Set("filter", "degree > 1")
	require.NoError(t, runNetwork(cmd, v, afero.NewOsFs(), []string{"fish"}))
	assert.Equal(t, "fist\nlist\n", buf.String())
}

func Test_runNetwork_table(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("format", "csv")
	v.Set("depth", -1)

	require.NoError(t, runNetwork(cmd, v, afero.NewOsFs(), []string{"litany"}))
	assert.Contains(t, buf.String(), "member")
	assert.Contains(t, buf.String(), "litany")
	assert.NotContains(t, buf.String(), "litanies")
}

func Test_runNetwork_dot(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper()
	v.Set("format", "dot")
	v.Set("depth", -1)

	require.NoError(t, runNetwork(cmd, v, afero.NewOsFs(), []string{"Fist"}))
	out := buf.String()
	assert.Contains(t, out, "graph wordlink {")
	assert.Contains(t, out, `"fist" [ color="red" penwidth="2.0" ]`)
	assert.Contains(t, out, `"fish" -- "fist"`)
	assert.Contains(t, out, `"list" -- "listy"`)
	assert.NotContains(t, out, "groundwood")
}

func Test_runNetwork_errors(t *testing.T) {
	cmd, _ := newTestCmd()
	v := newTestViper()
	v.Set("format", "size")
	v.Set("depth", -1)

	err := runNetwork(cmd, v, afero.NewOsFs(), []string{"litanies", "unknown"})
	assert.ErrorIs(t, err, graph.ErrWordNotFound)

	v.Set("corpus", "huge")
	err = runNetwork(cmd, v, afero.NewOsFs(), []string{"fist"})
	assert.ErrorIs(t, err, corpus.ErrUnknownCorpus)

	v.Set("corpus", "tiny")
	v.Set("format", "xml")
	err = runNetwork(cmd, v, afero.NewOsFs(), []string{"fist"})
	assert.ErrorContains(t, err, "unknown format: xml")

	v.Set("format", "size")
	v.Set("filter", "word +")
	err = runNetwork(cmd, v, afero.NewOsFs(), []string{"fist"})
	assert.ErrorIs(t, err, filter.ErrInvalidFilter)
}
