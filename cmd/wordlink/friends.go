package main

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewFriendsCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "friends <word>..."
	cmd.Aliases = []string{"friend", "neighbors"}
	cmd.Short = "List the words one edit away from words"
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runFriends(cmd, v, fs, args) }

	cmd.Flags().String("format", "table", "The output format {list|table|md|csv|tsv|simple}")

	return cmd
}

func runFriends(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, words []string) error {
	format := v.GetString("format")
	selector := v.GetString("corpus")
	if err := checkFormat(format, append([]string{"list"}, tableFormats...)...); err != nil {
		return err
	}
	a, err := AnalyzerFromViper(v, fs)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "word", "friend"})
	row := 0
	for _, word := range words {
		friends, err := a.Friends(cmd.Context(), word, selector)
		if err != nil {
			return err
		}
		if format == "list" {
			printList(cmd.OutOrStdout(), friends)
			continue
		}
		for _, f := range mapset.Sorted(friends) {
			row++
			t.AppendRow(table.Row{row, word, f})
		}
	}
	if format != "list" {
		render(t, format)
	}
	return nil
}
