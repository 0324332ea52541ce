package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/edit"
	"github.com/haijima/wordlink/internal/graph"
	"github.com/haijima/wordlink/internal/social"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func SetCorpusFlags(cmd *cobra.Command) {
	names := strings.Join(corpus.DefaultCatalog(".").Names(), "|")
	cmd.PersistentFlags().StringP("corpus", "c", "tiny", "The `name or index` of the word list {"+names+"}")
	cmd.PersistentFlags().StringP("dict-dir", "d", ".", "The directory containing the word lists")
	cmd.PersistentFlags().String("alphabet", edit.Lowercase.String(), "The `symbols` words are made of")
	cmd.PersistentFlags().Int("workers", 0, "The number of goroutines building the graph (0: all CPUs)")
	cmd.PersistentFlags().String("traversal", "dfs", "The traversal `order` of a social network {dfs|bfs}")
	cmd.PersistentFlags().Duration("timeout", 0, "Give up building a graph after this `duration` (0: no limit)")
	cmd.PersistentFlags().Bool("verify", false, "Check that every friendship is mutual")
	_ = cmd.MarkPersistentFlagDirname("dict-dir")
}

// CatalogFromViper returns the corpora listed in the config file, or the standard word lists in dict-dir.
func CatalogFromViper(v *viper.Viper) (corpus.Catalog, error) {
	if !v.IsSet("corpora") {
		return corpus.DefaultCatalog(v.GetString("dict-dir")), nil
	}
	var catalog corpus.Catalog
	if err := v.UnmarshalKey("corpora", &catalog); err != nil {
		return nil, errors.Wrap(err, "invalid corpora in config")
	}
	return catalog, nil
}

func AnalyzerFromViper(v *viper.Viper, fs afero.Fs) (*social.Analyzer, error) {
	alphabet, err := edit.NewAlphabet(v.GetString("alphabet"))
	if err != nil {
		return nil, err
	}
	traversal, err := graph.ParseTraversal(v.GetString("traversal"))
	if err != nil {
		return nil, err
	}
	catalog, err := CatalogFromViper(v)
	if err != nil {
		return nil, err
	}

	return social.New(fs, catalog,
		social.WithAlphabet(alphabet),
		social.WithWorkers(v.GetInt("workers")),
		social.WithTraversal(traversal),
		social.WithTimeout(v.GetDuration("timeout")),
		social.WithVerify(v.GetBool("verify")),
	)
}
