package graph

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/edit"
	"golang.org/x/sync/errgroup"
)

const chunkSize = 256

type buildOption struct {
	workers  int
	progress int
}

type BuildOption func(*buildOption)

// WithWorkers bounds the number of goroutines. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) BuildOption {
	return func(o *buildOption) { o.workers = n }
}

// WithProgress logs a progress line every n words. n <= 0 disables it.
func WithProgress(n int) BuildOption {
	return func(o *buildOption) { o.progress = n }
}

// Build computes the friends of every corpus word spelled with alphabet.
// Other words are left out of the graph, so every friendship is mutual.
// Words are split into chunks processed in parallel; each chunk owns its slots of the result.
func Build(ctx context.Context, c *corpus.Corpus, alphabet edit.Alphabet, opts ...BuildOption) (AdjacencyMap, error) {
	o := &buildOption{progress: 10000}
	for _, opt := range opts {
		opt(o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	words := make([]string, 0, c.Len())
	for _, w := range c.Words() {
		if alphabet.Accepts(w) {
			words = append(words, w)
		}
	}
	if skipped := c.Len() - len(words); skipped > 0 {
		slog.Warn("words outside alphabet are left out of the graph", "count", skipped, "alphabet", alphabet.String())
	}
	friends := make([]mapset.Set[string], len(words))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < len(words); lo += chunkSize {
		hi := min(lo+chunkSize, len(words))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				friends[i] = Friends(c, words[i], alphabet)
				if n := done.Add(1); o.progress > 0 && n%int64(o.progress) == 0 {
					slog.Debug("matching friends", "done", n, "total", len(words))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "build adjacency of %d words", len(words))
	}

	adj := make(AdjacencyMap, len(words))
	for i, w := range words {
		adj[w] = friends[i]
	}
	slog.Debug("adjacency built", "words", len(adj), "edges", adj.EdgeCount())
	return adj, nil
}

// Friends returns the corpus words at edit distance 1 from word.
// A word outside alphabet has no friends.
func Friends(c *corpus.Corpus, word string, alphabet edit.Alphabet) mapset.Set[string] {
	friends := mapset.NewSet[string]()
	if !alphabet.Accepts(word) {
		return friends
	}
	edit.Candidates(word, alphabet).Each(func(s string) bool {
		if s != word && c.Contains(s) {
			friends.Add(s)
		}
		return false
	})
	return friends
}
