package social

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/wordlink/cache"
	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/edit"
	"github.com/haijima/wordlink/internal/graph"
	"github.com/spf13/afero"
)

// Network is a corpus together with its friendships.
type Network struct {
	Name      string
	Corpus    *corpus.Corpus
	Adjacency graph.AdjacencyMap
}

// Analyzer answers social network queries against the corpora of a catalog.
// Each corpus is loaded and its graph built at most once per Analyzer.
type Analyzer struct {
	fs        afero.Fs
	catalog   corpus.Catalog
	alphabet  edit.Alphabet
	workers   int
	traversal graph.Traversal
	timeout   time.Duration
	verify    bool

	corpora  *cache.Cache[corpus.Entry, *corpus.Corpus]
	networks *cache.Cache[corpus.Entry, *Network]
}

type Option func(*Analyzer)

func WithAlphabet(alphabet edit.Alphabet) Option {
	return func(a *Analyzer) { a.alphabet = alphabet }
}

func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

func WithTraversal(t graph.Traversal) Option {
	return func(a *Analyzer) { a.traversal = t }
}

// WithTimeout bounds the time spent building one graph. 0 means no limit.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// WithVerify checks every built graph for symmetry.
func WithVerify(verify bool) Option {
	return func(a *Analyzer) { a.verify = verify }
}

func New(fs afero.Fs, catalog corpus.Catalog, opts ...Option) (*Analyzer, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{fs: fs, catalog: catalog, alphabet: edit.Lowercase, traversal: graph.DepthFirst}
	for _, opt := range opts {
		opt(a)
	}
	a.corpora = cache.New(a.readCorpus)
	a.networks = cache.New(a.buildNetwork)
	return a, nil
}

func (a *Analyzer) readCorpus(_ context.Context, e corpus.Entry) (*corpus.Corpus, error) {
	return corpus.Load(a.fs, e.Path, a.alphabet)
}

func (a *Analyzer) buildNetwork(ctx context.Context, e corpus.Entry) (*Network, error) {
	c, err := a.corpora.Get(ctx, e)
	if err != nil {
		return nil, err
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	adj, err := graph.Build(ctx, c, a.alphabet, graph.WithWorkers(a.workers))
	if err != nil {
		return nil, errors.Wrapf(err, "corpus %s", e.Name)
	}
	if a.verify {
		if err := adj.Validate(); err != nil {
			return nil, errors.Wrapf(err, "corpus %s", e.Name)
		}
	}
	slog.Info("friendships found", "corpus", e.Name, "words", c.Len(), "edges", adj.EdgeCount(), "elapsed", time.Since(start).Round(time.Millisecond))
	return &Network{Name: e.Name, Corpus: c, Adjacency: adj}, nil
}

// Graph returns the network of the selected corpus.
func (a *Analyzer) Graph(ctx context.Context, selector string) (*Network, error) {
	e, err := a.catalog.Resolve(selector)
	if err != nil {
		return nil, err
	}
	return a.networks.Get(ctx, e)
}

// lookup normalizes word and checks its membership before building the graph.
func (a *Analyzer) lookup(ctx context.Context, word, selector string) (string, *Network, error) {
	e, err := a.catalog.Resolve(selector)
	if err != nil {
		return "", nil, err
	}
	c, err := a.corpora.Get(ctx, e)
	if err != nil {
		return "", nil, err
	}
	w := corpus.Normalize(word)
	if !c.Contains(w) {
		err := errors.Wrapf(graph.ErrWordNotFound, "%q in corpus %s", w, e.Name)
		return "", nil, errors.WithHintf(err, "the corpus %s has %d words", e.Name, c.Len())
	}
	n, err := a.networks.Get(ctx, e)
	if err != nil {
		return "", nil, err
	}
	return w, n, nil
}

// Network returns the words connected to word, word included.
func (a *Analyzer) Network(ctx context.Context, word, selector string) (mapset.Set[string], error) {
	w, n, err := a.lookup(ctx, word, selector)
	if err != nil {
		return nil, err
	}
	return graph.Component(n.Adjacency, w, a.traversal)
}

func (a *Analyzer) Size(ctx context.Context, word, selector string) (int, error) {
	s, err := a.Network(ctx, word, selector)
	if err != nil {
		return 0, err
	}
	return s.Cardinality(), nil
}

// Within returns the words at most depth friendships away from word.
func (a *Analyzer) Within(ctx context.Context, word, selector string, depth int) (mapset.Set[string], error) {
	w, n, err := a.lookup(ctx, word, selector)
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return graph.Component(n.Adjacency, w, a.traversal)
	}
	return graph.Neighborhood(n.Adjacency, w, depth)
}

// Friends returns the direct friends of word.
func (a *Analyzer) Friends(ctx context.Context, word, selector string) (mapset.Set[string], error) {
	w, n, err := a.lookup(ctx, word, selector)
	if err != nil {
		return nil, err
	}
	return n.Adjacency.Friends(w).Clone(), nil
}

// Clusters returns every social network of the corpus, largest first.
func (a *Analyzer) Clusters(ctx context.Context, selector string) ([]mapset.Set[string], *Network, error) {
	n, err := a.Graph(ctx, selector)
	if err != nil {
		return nil, nil, err
	}
	return graph.Clusters(n.Adjacency), n, nil
}
