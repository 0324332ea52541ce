package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// genconf writes every flag of every command, so the per-run flags are noise in its own help.
var genConfHiddenFlags = []string{"config", "no-color", "corpus", "dict-dir", "alphabet", "workers", "traversal", "timeout", "verify"}

func NewGenConfCmd(_ *viper.Viper, _ afero.Fs) *cobra.Command {
	genConfCmd := cobrax.PrintConfigCmd("genconf")
	genConfCmd.Short = "Generate a configuration file from the current flags"
	genConfCmd.Example = "  wordlink genconf --format yaml > .wordlink.yaml"
	genConfCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		for _, name := range genConfHiddenFlags {
			if f := cmd.Flag(name); f != nil {
				f.Hidden = true
			}
		}
		cmd.Root().HelpFunc()(cmd, args)
	})
	return genConfCmd
}
