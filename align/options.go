// SPDX-License-Identifier: MIT

// Package align: functional configuration for Align, AlignSequence and
// AlignSubsequence.
//
// Options are resolved per call; there is no package-level mutable state.
// Option constructors never panic: invalid values are reported by the
// alignment entry points as sentinel errors, before any allocation.
package align

import (
	"io"
	"log/slog"
)

// DefaultMaxCells bounds (len(seq)+1)*(len(ref)+1); roughly 512 MiB of cells.
const DefaultMaxCells = 1 << 26

// discardLogger is used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option mutates Options. Applying the same Option twice is idempotent.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	scorer   Scorer       // DefaultScorer{}
	mode     Mode         // Full
	logger   *slog.Logger // discardLogger
	trace    bool         // false
	maxCells int          // DefaultMaxCells
}

func defaultOptions() Options {
	return Options{
		scorer:   DefaultScorer{},
		mode:     Full,
		logger:   discardLogger,
		maxCells: DefaultMaxCells,
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validate checks preconditions in a fixed order: scorer -> mode -> cell limit.
func (o Options) validate() error {
	if o.scorer == nil {
		return ErrNilScorer
	}
	if !o.mode.valid() {
		return ErrBadMode
	}
	if o.maxCells <= 0 {
		return ErrBadMaxCells
	}

	return nil
}

// WithScorer sets the scoring strategy. A nil scorer makes the call fail with ErrNilScorer.
func WithScorer(s Scorer) Option {
	return func(o *Options) { o.scorer = s }
}

// WithMode sets the alignment mode used by Align.
// AlignSequence and AlignSubsequence override it.
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithLogger sets the diagnostics sink. nil restores the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
	}
}

// WithTrace enables debug-level diagnostics: the matrix dump and the aligned
// lines. Tracing never affects the returned alignment.
func WithTrace(on bool) Option {
	return func(o *Options) { o.trace = on }
}

// WithMaxCells overrides DefaultMaxCells.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.maxCells = n }
}
