package main

import (
	"fmt"

	"github.com/haijima/wordlink/internal/corpus"
	"github.com/haijima/wordlink/internal/edit"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewCandidatesCommand(v *viper.Viper, _ afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "candidates <word>"
	cmd.Aliases = []string{"edits"}
	cmd.Short = "List every string one edit away from a word, whether it is a word or not"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runCandidates(cmd, v, args[0]) }

	cmd.Flags().String("format", "size", "The output format {size|list}")

	return cmd
}

func runCandidates(cmd *cobra.Command, v *viper.Viper, word string) error {
	format := v.GetString("format")
	if err := checkFormat(format, "size", "list"); err != nil {
		return err
	}
	alphabet, err := edit.NewAlphabet(v.GetString("alphabet"))
	if err != nil {
		return err
	}

	candidates := edit.Candidates(corpus.Normalize(word), alphabet)
	if format == "list" {
		printList(cmd.OutOrStdout(), candidates)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), candidates.Cardinality())
	return nil
}
