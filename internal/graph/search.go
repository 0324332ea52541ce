package graph

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
)

var ErrWordNotFound = errors.New("word not found in corpus")

// Traversal selects the worklist discipline of Component.
type Traversal int

const (
	DepthFirst Traversal = iota
	BreadthFirst
)

func ParseTraversal(s string) (Traversal, error) {
	switch strings.ToLower(s) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	}
	return DepthFirst, errors.Newf("unknown traversal: %s", s)
}

func (t Traversal) String() string {
	if t == BreadthFirst {
		return "bfs"
	}
	return "dfs"
}

// Component returns every word reachable from seed, seed included.
func Component(adj AdjacencyMap, seed string, order Traversal) (mapset.Set[string], error) {
	if !adj.Has(seed) {
		return nil, errors.Wrapf(ErrWordNotFound, "%q", seed)
	}

	component := mapset.NewSet[string]()
	visited := mapset.NewThreadUnsafeSet(seed)
	frontier := []string{seed}
	for len(frontier) > 0 {
		var current string
		if order == BreadthFirst {
			current, frontier = frontier[0], frontier[1:]
		} else {
			last := len(frontier) - 1
			current, frontier = frontier[last], frontier[:last]
		}
		component.Add(current)

		adj.Friends(current).Each(func(f string) bool {
			if visited.Add(f) {
				frontier = append(frontier, f)
			}
			return false
		})
	}
	return component, nil
}

// Neighborhood returns the words within depth hops of seed.
// A negative depth is unbounded.
func Neighborhood(adj AdjacencyMap, seed string, depth int) (mapset.Set[string], error) {
	if depth < 0 {
		return Component(adj, seed, BreadthFirst)
	}
	if !adj.Has(seed) {
		return nil, errors.Wrapf(ErrWordNotFound, "%q", seed)
	}

	visited := mapset.NewSet(seed)
	queue := adj.Friends(seed).Clone()
	for i := 0; i < depth && !queue.IsEmpty(); i++ {
		visited = visited.Union(queue)
		next := mapset.NewSet[string]()
		for _, q := range queue.ToSlice() {
			next = next.Union(adj.Friends(q))
		}
		queue = next.Difference(visited)
	}
	return visited, nil
}

// Clusters returns every component, largest first. Ties are ordered by their smallest word.
func Clusters(adj AdjacencyMap) []mapset.Set[string] {
	visited := mapset.NewThreadUnsafeSet[string]()
	clusters := make([]mapset.Set[string], 0)
	for _, w := range adj.Words() {
		if visited.Contains(w) {
			continue
		}
		cluster, _ := Component(adj, w, BreadthFirst)
		clusters = append(clusters, cluster)
		visited.Append(cluster.ToSlice()...)
	}
	slices.SortStableFunc(clusters, func(a, b mapset.Set[string]) int {
		return b.Cardinality() - a.Cardinality()
	})
	return clusters
}
