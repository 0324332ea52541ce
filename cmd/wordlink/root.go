package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "wordlink"
	cmd.Short = "wordlink finds the social network of a word: every word reachable by single-letter edits"
	cmd.Version = cobrax.VersionFunc(version, commit, date)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}
	SetCorpusFlags(cmd)

	cmd.AddCommand(NewNetworkCommand(v, fs))
	cmd.AddCommand(NewFriendsCommand(v, fs))
	cmd.AddCommand(NewClustersCommand(v, fs))
	cmd.AddCommand(NewCandidatesCommand(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
