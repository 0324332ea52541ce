package main

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/wordlink/internal/dot"
	"github.com/haijima/wordlink/internal/filter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewNetworkCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "network <word>..."
	cmd.Aliases = []string{"social", "component"}
	cmd.Short = "Show the social network of words"
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runNetwork(cmd, v, fs, args) }

	cmd.Flags().String("format", "size", "The output format {size|list|table|md|csv|tsv|simple|dot}")
	cmd.Flags().Int("depth", -1, "Only follow this many friendships from the word (-1: no limit)")
	cmd.Flags().String("filter", "", "The CEL `expression` selecting the words to show, e.g. 'size(word) == 4 && degree > 1'")

	return cmd
}

func runNetwork(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, words []string) error {
	format := v.GetString("format")
	depth := v.GetInt("depth")
	selector := v.GetString("corpus")
	if err := checkFormat(format, append([]string{"size", "list", "dot"}, tableFormats...)...); err != nil {
		return err
	}
	f, err := filter.New(v.GetString("filter"))
	if err != nil {
		return err
	}
	a, err := AnalyzerFromViper(v, fs)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "word", "member", "friends"})
	members := mapset.NewSet[string]()
	for _, word := range words {
		network, err := a.Within(cmd.Context(), word, selector, depth)
		if err != nil {
			return err
		}
		n, err := a.Graph(cmd.Context(), selector)
		if err != nil {
			return err
		}
		network, err = f.Apply(network, n.Adjacency)
		if err != nil {
			return err
		}

		switch format {
		case "size":
			fmt.Fprintln(cmd.OutOrStdout(), network.Cardinality())
		case "list":
			printList(cmd.OutOrStdout(), network)
		case "dot":
			members = members.Union(network)
		default:
			for i, m := range mapset.Sorted(network) {
				t.AppendRow(table.Row{i + 1, word, m, n.Adjacency.Friends(m).Cardinality()})
			}
			t.AppendSeparator()
		}
	}

	switch format {
	case "size", "list":
	case "dot":
		n, err := a.Graph(cmd.Context(), selector)
		if err != nil {
			return err
		}
		return dot.WriteGraph(cmd.OutOrStdout(), networkGraph(n.Name, n.Adjacency, members, normalizeAll(words)...))
	default:
		render(t, format)
	}
	return nil
}
