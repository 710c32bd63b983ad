package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

// Execute builds the command tree and runs it. It is called once by main.main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the nwalign command with its subcommands and flags bound to
// a fresh Viper instance.
func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "nwalign",
		Short: "Align an observed sequence against a reference with Needleman-Wunsch",
		Long: `Align an observed sequence against a reference with Needleman-Wunsch

"nwalign sequence" anchors both ends and costs every gap. "nwalign subsequence"
lets the reference overhang both ends of the observed sequence for free, which
locates a read inside a longer template.

Settings come from flags, NWALIGN_* environment variables and an optional
settings file (--config), in that order of precedence.`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "settings file (yaml, toml or json)")
	flags.Int("match", align.DefaultMatch, "score for a pair of equal bases")
	flags.Int("mismatch", align.DefaultMismatch, "score for a pair of unequal bases")
	flags.Int("insert", align.DefaultGap, "score for a base only in the observed sequence")
	flags.Int("delete", align.DefaultGap, "score for a base only in the reference")
	flags.BoolP("trace", "t", false, "log the work matrix and aligned lines to stderr")
	flags.Int("max-cells", align.DefaultMaxCells, "largest work matrix allowed, in cells")

	bindFlags(v, rootCmd, map[string]string{
		config.KeyFile:     "config",
		config.KeyMatch:    "match",
		config.KeyMismatch: "mismatch",
		config.KeyInsert:   "insert",
		config.KeyDelete:   "delete",
		config.KeyTrace:    "trace",
		config.KeyMaxCells: "max-cells",
	})

	rootCmd.AddCommand(
		newAlignCmd(v, "sequence", "Align with both ends anchored", align.Full),
		newAlignCmd(v, "subsequence", "Align against a longer reference template", align.Subsequence),
	)

	return rootCmd
}

// bindFlags binds each persistent flag to its viper key.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err) // flag names above are static
		}
	}
}

// newLogger writes text records to w; trace lowers the level to debug.
func newLogger(w io.Writer, trace bool) *slog.Logger {
	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
