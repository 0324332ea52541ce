package filter

import (
	stderrors "errors"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/wordlink/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		expr   string
		word   string
		degree int
		want   bool
	}{
		{expr: "", word: "fist", degree: 0, want: true},
		{expr: `word.startsWith("li")`, word: "list", degree: 3, want: true},
		{expr: `word.startsWith("li")`, word: "fist", degree: 2, want: false},
		{expr: "size(word) == 4", word: "lisp", degree: 1, want: true},
		{expr: "degree > 1", word: "lisp", degree: 1, want: false},
		{expr: `degree >= 2 && word.endsWith("t")`, word: "fist", degree: 2, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := New(tt.expr)
			require.NoError(t, err)
			got, err := f.Match(tt.word, tt.degree)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_invalid(t *testing.T) {
	for _, expr := range []string{"word ==", "size(word)", "unknown > 1"} {
		_, err := New(expr)
		assert.ErrorIs(t, err, ErrInvalidFilter, expr)
		assert.True(t, stderrors.Is(err, ErrInvalidFilter), expr)
	}

	_, err := New("word ==")
	assert.ErrorContains(t, err, `compile filter "word ==":`)
}

func TestFilter_Apply(t *testing.T) {
	adj := graph.NewAdjacencyMap("fist", "fish", "list", "listy")
	adj.Connect("fist", "fish")
	adj.Connect("fist", "list")
	adj.Connect("list", "listy")
	words := mapset.NewSet("fist", "fish", "list", "listy")

	f, err := New("degree == 2")
	require.NoError(t, err)
	got, err := f.Apply(words, adj)
	require.NoError(t, err)
	assert.True(t, mapset.NewSet("fist", "list").Equal(got))

	all, err := New("")
	require.NoError(t, err)
	got, err = all.Apply(words, adj)
	require.NoError(t, err)
	assert.True(t, words.Equal(got))
}
