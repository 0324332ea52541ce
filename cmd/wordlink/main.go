package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/haijima/cobrax"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// set by -ldflags "-X main.version=..."
var (
	version string
	commit  string
	date    string
)

var v *viper.Viper
var rootCmd *cobra.Command

func init() {
	cobra.OnInitialize(func() {
		color.NoColor = color.NoColor || v.GetBool("no-color")
		l := newLogger(rootCmd.ErrOrStderr(), v)
		slog.SetDefault(l)
		cobrax.SetLogger(l)
	})
}

// newLogger logs to w at the level chosen by -v and -q.
func newLogger(w io.Writer, v *viper.Viper) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{Level: cobrax.VerbosityLevel(v), NoColor: color.NoColor, TimeFormat: time.Kitchen}))
}

// logError prints err and every hint attached to it.
func logError(err error) {
	slog.Error(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		slog.Info(hint)
	}
}

func main() {
	v = viper.NewWithOptions(viper.WithLogger(slog.Default()))
	fs := afero.NewOsFs()
	v.SetFs(fs)
	rootCmd = NewRootCmd(v, fs)
	rootCmd.SetOut(colorable.NewColorableStdout())
	rootCmd.SetErr(colorable.NewColorableStderr())
	if err := rootCmd.Execute(); err != nil {
		logError(err)
		os.Exit(1)
	}
}
