package main

import (
	"fmt"

	"github.com/katalvlaran/nwalign/align"
	"github.com/katalvlaran/nwalign/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newAlignCmd returns a subcommand running Align in mode on its two arguments.
func newAlignCmd(v *viper.Viper, use, short string, mode align.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   use + " SEQ REF",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Trace)
			logger.Debug("nwalign: settings",
				"mode", mode.String(),
				"match", cfg.Scoring.Match,
				"mismatch", cfg.Scoring.Mismatch,
				"insert", cfg.Scoring.Insert,
				"delete", cfg.Scoring.Delete,
				"max-cells", cfg.MaxCells,
			)

			seq, ref := args[0], args[1]
			opts := append(cfg.Options(), align.WithMode(mode), align.WithLogger(logger))
			a, err := align.Align(seq, ref, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			lines, err := align.Render(seq, ref, a.Ops)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}

			return printAlignment(cmd, a, lines)
		},
	}
}

// printAlignment writes the summary and the aligned lines to the command output.
func printAlignment(cmd *cobra.Command, a align.Alignment, lines align.Lines) error {
	c := a.Ops.Counts()
	_, err := fmt.Fprintf(cmd.OutOrStdout(),
		"mode:     %s\ncigar:    %s\ncode:     %s\nscore:    %d\nidentity: %.4f (core %.4f)\ncounts:   %d=/%dX/%dI/%dD\nseq:      %s\n          %s\nref:      %s\n",
		a.Mode, a.Ops.CIGAR(), lines.Code, a.Score, c.Identity(), a.Ops.Core().Counts().Identity(),
		c.Matches, c.Substitutions, c.Insertions, c.Deletions,
		lines.Seq, lines.Mid, lines.Ref,
	)

	return err
}
