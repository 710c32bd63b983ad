// Package config holds the nwalign command settings. Values are unmarshalled
// from Viper, which merges (highest first) command line flags, NWALIGN_*
// environment variables, an optional settings file and the defaults below.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/nwalign/align"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, e.g. NWALIGN_SCORING_MATCH.
const EnvPrefix = "NWALIGN"

// Setting keys. Nested keys use viper's dot notation.
const (
	KeyFile     = "config"
	KeyMatch    = "scoring.match"
	KeyMismatch = "scoring.mismatch"
	KeyInsert   = "scoring.insert"
	KeyDelete   = "scoring.delete"
	KeyTrace    = "trace"
	KeyMaxCells = "max-cells"
)

// ErrInvalid is returned when loaded settings cannot drive an alignment.
var ErrInvalid = errors.New("config: invalid settings")

// ScoringConfig are the constants of a linear scorer
type ScoringConfig struct {
	// reward for a pair of equal bases
	Match int `mapstructure:"match"`

	// cost of a pair of unequal bases
	Mismatch int `mapstructure:"mismatch"`

	// cost of a base present only in the observed sequence
	Insert int `mapstructure:"insert"`

	// cost of a base present only in the reference
	Delete int `mapstructure:"delete"`
}

// Config is the root-level settings struct
type Config struct {
	Scoring ScoringConfig `mapstructure:"scoring"`

	// log the work matrix and aligned lines at debug level
	Trace bool `mapstructure:"trace"`

	// upper bound on (len(seq)+1)*(len(ref)+1)
	MaxCells int `mapstructure:"max-cells"`
}

// New returns a Viper instance with defaults and environment lookup configured.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMatch, align.DefaultMatch)
	v.SetDefault(KeyMismatch, align.DefaultMismatch)
	v.SetDefault(KeyInsert, align.DefaultGap)
	v.SetDefault(KeyDelete, align.DefaultGap)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyMaxCells, align.DefaultMaxCells)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the settings file named by KeyFile, if any, and unmarshals
// everything into a Config.
func Load(v *viper.Viper) (Config, error) {
	if file := v.GetString(KeyFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if c.MaxCells <= 0 {
		return Config{}, fmt.Errorf("%s must be > 0, got %d: %w", KeyMaxCells, c.MaxCells, ErrInvalid)
	}

	return c, nil
}

// Scorer returns the linear scorer described by c.Scoring.
func (c Config) Scorer() align.LinearScorer {
	return align.LinearScorer{
		Match:    c.Scoring.Match,
		Mismatch: c.Scoring.Mismatch,
		Insert:   c.Scoring.Insert,
		Delete:   c.Scoring.Delete,
	}
}

// Options converts c into alignment options.
func (c Config) Options() []align.Option {
	return []align.Option{
		align.WithScorer(c.Scorer()),
		align.WithTrace(c.Trace),
		align.WithMaxCells(c.MaxCells),
	}
}
