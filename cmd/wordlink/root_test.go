package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/edit"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	v := viper.New()
	fs := afero.NewMemMapFs()
	cmd := NewRootCmd(v, fs)

	assert.Equal(t, "wordlink", cmd.Use)
	assert.NotNil(t, cmd.Commands())
	assert.Equal(t, 5, len(cmd.Commands()))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("corpus"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("dict-dir"))
	assert.Contains(t, cmd.Version, "built with")
}

func TestNewGenConfCmd_help(t *testing.T) {
	cmd := NewRootCmd(viper.New(), afero.NewMemMapFs())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"genconf", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "--format")
	for _, name := range []string{"--config", "--corpus", "--dict-dir", "--alphabet", "--traversal"} {
		assert.NotContains(t, buf.String(), name)
	}
}

func Test_logError(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))

	logError(errors.WithHint(errors.New("corpus is empty"), "choose another corpus"))
	assert.Contains(t, buf.String(), "corpus is empty")
	assert.Contains(t, buf.String(), "choose another corpus")
}

func newTestViper() *viper.Viper {
	v := viper.New()
	v.Set("corpus", "tiny")
	v.Set("dict-dir", "./testdata/dicts")
	v.Set("alphabet", edit.Lowercase.String())
	v.Set("traversal", "dfs")
	v.Set("verify", true)
	v.Set("v", 1)
	return v
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	color.NoColor = true
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	return cmd, buf
}

func TestCatalogFromViper(t *testing.T) {
	v := viper.New()
	v.Set("dict-dir", "words")
	c, err := CatalogFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, corpus.DefaultCatalog("words"), c)

	v.Set("corpora", []map[string]any{
		{"name": "small", "path": "testdata/dicts/very_small_test_dictionary.txt"},
		{"name": "groundwood", "path": "testdata/dicts/eighth_dictionary.txt"},
	})
	c, err = CatalogFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, corpus.Catalog{
		{Name: "small", Path: "testdata/dicts/very_small_test_dictionary.txt"},
		{Name: "groundwood", Path: "testdata/dicts/eighth_dictionary.txt"},
	}, c)
}

func TestAnalyzerFromViper_invalid(t *testing.T) {
	v := newTestViper()
	v.Set("alphabet", "")
	_, err := AnalyzerFromViper(v, afero.NewOsFs())
	assert.ErrorIs(t, err, edit.ErrInvalidAlphabet)

	v = newTestViper()
	v.Set("traversal", "random")
	_, err = AnalyzerFromViper(v, afero.NewOsFs())
	assert.Error(t, err)
}
