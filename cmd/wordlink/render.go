package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/dot"
	"github.com/haijima/wordlink/internal/graph"
	"github.com/jedib0t/go-pretty/v6/table"
)

var tableFormats = []string{"table", "md", "csv", "tsv", "simple"}

func checkFormat(format string, formats ...string) error {
	if !slices.Contains(formats, format) {
		return errors.WithHintf(errors.Newf("unknown format: %s", format), "choose one of {%s}", strings.Join(formats, "|"))
	}
	return nil
}

func render(t table.Writer, format string) {
	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	}
}

func printList(w io.Writer, words mapset.Set[string]) {
	for _, word := range mapset.Sorted(words) {
		fmt.Fprintln(w, word)
	}
}

// networkGraph draws members and the friendships between them. The seeds are highlighted.
func networkGraph(title string, adj graph.AdjacencyMap, members mapset.Set[string], seeds ...string) dot.Graph {
	g := dot.Graph{Title: title}
	for _, w := range mapset.Sorted(members) {
		attrs := dot.Attrs{}
		if slices.Contains(seeds, w) {
			attrs["color"] = "red"
			attrs["penwidth"] = "2.0"
		}
		g.Nodes = append(g.Nodes, &dot.Node{ID: w, Attrs: attrs})
	}
	for _, e := range adj.Edges(members) {
		g.Edges = append(g.Edges, &dot.Edge{From: e.From, To: e.To})
	}
	return g
}

func normalizeAll(words []string) []string {
	res := make([]string, 0, len(words))
	for _, w := range words {
		res = append(res, corpus.Normalize(w))
	}
	return res
}
