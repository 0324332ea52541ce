package main

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/fatih/color"
	"github.com/haijima/wordlink/internal/dot"
	"github.com/haijima/wordlink/internal/social"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const maxShownWords = 8

func NewClustersCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "clusters"
	cmd.Aliases = []string{"cluster", "components"}
	cmd.Short = "Summarize every social network of the corpus"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runClusters(cmd, v, fs) }

	cmd.Flags().String("format", "text", "The output format {text|dot}")
	cmd.Flags().Int("top", 10, "The number of largest clusters to show")

	return cmd
}

func runClusters(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	top := v.GetInt("top")
	if err := checkFormat(format, "text", "dot"); err != nil {
		return err
	}
	a, err := AnalyzerFromViper(v, fs)
	if err != nil {
		return err
	}
	clusters, n, err := a.Clusters(cmd.Context(), v.GetString("corpus"))
	if err != nil {
		return err
	}
	largest := clusters[:min(max(top, 0), len(clusters))]

	if format == "dot" {
		return dot.WriteGraph(cmd.OutOrStdout(), clusterGraph(n, largest))
	}
	return printClusterSummary(cmd.OutOrStdout(), n, clusters, largest)
}

type clusterRow struct {
	Size  int
	Words []string
	More  bool
}

const tmplClusterSummary = `{{title "Summary"}}
  {{key "corpus"}}         : {{.corpus}}
  {{key "words"}}          : {{.words}}
  {{key "friendships"}}    : {{.edges}}
  {{key "clusters"}}       : {{.clusters}}
  {{key "isolated words"}} : {{.isolated}}
  {{key "largest"}}
  {{- range .largest}}
	{{printf "%5d" .Size}} {{printf "%q" .Words}}{{if .More}} ...{{end}}
  {{- end}}
`

func printClusterSummary(w io.Writer, n *social.Network, clusters, largest []mapset.Set[string]) error {
	isolated := 0
	for _, c := range clusters {
		if c.Cardinality() == 1 {
			isolated++
		}
	}
	rows := make([]clusterRow, 0, len(largest))
	for _, c := range largest {
		words := mapset.Sorted(c)
		rows = append(rows, clusterRow{Size: len(words), Words: words[:min(len(words), maxShownWords)], More: len(words) > maxShownWords})
	}

	data := make(map[string]any)
	data["corpus"] = n.Name
	data["words"] = n.Corpus.Len()
	data["edges"] = n.Adjacency.EdgeCount()
	data["clusters"] = len(clusters)
	data["isolated"] = isolated
	data["largest"] = rows

	return templateRender(w, "clusterSummary", tmplClusterSummary, data)
}

func clusterGraph(n *social.Network, clusters []mapset.Set[string]) dot.Graph {
	g := dot.Graph{Title: n.Name}
	for i, c := range clusters {
		sub := networkGraph("", n.Adjacency, c)
		g.Clusters = append(g.Clusters, &dot.Cluster{
			ID:    fmt.Sprint(i + 1),
			Nodes: sub.Nodes,
			Attrs: dot.Attrs{"label": fmt.Sprintf("#%d (%d words)", i+1, c.Cardinality()), "style": "dashed"},
		})
		g.Edges = append(g.Edges, sub.Edges...)
	}
	return g
}

var tmplFuncs = map[string]any{
	"title": color.CyanString,
	"key":   color.MagentaString,
}

func templateRender(w io.Writer, name string, tmpl string, data map[string]any) error {
	t, err := template.New(name).Funcs(tmplFuncs).Parse(tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = t.Execute(&buf, data); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
