package graph

import (
	"slices"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/maps"
)

var (
	ErrAsymmetric = errors.New("adjacency is not symmetric")
	ErrSelfLoop   = errors.New("word is adjacent to itself")
)

// AdjacencyMap maps every corpus word to the corpus words one edit away.
type AdjacencyMap SetMap[string, string]

func NewAdjacencyMap(words ...string) AdjacencyMap {
	return AdjacencyMap(NewSetMap[string, string](words...))
}

// Connect adds the undirected edge u-v.
func (a AdjacencyMap) Connect(u, v string) {
	SetMap[string, string](a).Add(u, v)
	SetMap[string, string](a).Add(v, u)
}

func (a AdjacencyMap) Has(word string) bool {
	_, ok := a[word]
	return ok
}

// Friends returns the direct neighbors of word. The set must not be modified.
func (a AdjacencyMap) Friends(word string) mapset.Set[string] {
	return SetMap[string, string](a).Get(word)
}

func (a AdjacencyMap) Words() []string {
	words := maps.Keys(a)
	slices.Sort(words)
	return words
}

func (a AdjacencyMap) EdgeCount() int {
	n := 0
	for _, friends := range a {
		n += friends.Cardinality()
	}
	return n / 2
}

// Validate checks that no word is its own friend and that every friendship is mutual.
func (a AdjacencyMap) Validate() error {
	for _, w := range a.Words() {
		friends := a[w]
		if friends.Contains(w) {
			return errors.Wrapf(ErrSelfLoop, "%q", w)
		}
		for _, f := range mapset.Sorted(friends) {
			if !a.Friends(f).Contains(w) {
				return errors.Wrapf(ErrAsymmetric, "%q is a friend of %q but not vice versa", f, w)
			}
		}
	}
	return nil
}

type Edge struct {
	From, To string
}

// Edges returns the sorted undirected edges between members, each once with From < To.
func (a AdjacencyMap) Edges(members mapset.Set[string]) []Edge {
	edges := make([]Edge, 0)
	for _, w := range mapset.Sorted(members) {
		for _, f := range mapset.Sorted(a.Friends(w)) {
			if w < f && members.Contains(f) {
				edges = append(edges, Edge{From: w, To: f})
			}
		}
	}
	return edges
}
