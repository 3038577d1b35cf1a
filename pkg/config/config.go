package config

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrMissingReplacement is returned when a real rename is requested without a
// replacement template. Matching alone is fine in dry-run mode; renaming
// without a template is a configuration error, caught before any work runs.
var ErrMissingReplacement = errors.New("replacement template is required for renaming")

// Config is the full configuration of one run.
type Config struct {
	// Root is the directory whose files are matched. Defaults to ".".
	Root string
	// Pattern is the regex matched against relative filenames.
	Pattern string
	// Replacement is the optional replacement template (`\N`, `\L\N`, `\U\N`).
	// Empty means match-only.
	Replacement string
	// DryRun computes and reports matches without touching the filesystem.
	DryRun bool
	// Full anchors the pattern against the whole filename.
	Full bool
	// Recursive lists files under the whole tree instead of direct children.
	Recursive bool
	// Padding zero-fills all-numeric groups to this minimum width. 0 disables.
	Padding int
	// Ignore holds doublestar glob patterns excluded from listing.
	Ignore []string
	// ContinueOnError keeps renaming remaining files after a failed rename
	// instead of halting on the first error.
	ContinueOnError bool
}

// Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.Pattern == "" {
		return errors.New("pattern is required")
	}
	if cfg.Padding < 0 {
		return errors.Errorf("padding must be >= 0, got %d", cfg.Padding)
	}
	if !cfg.DryRun && cfg.Replacement == "" {
		return ErrMissingReplacement
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// FileConfig holds defaults read from an optional config file. Pointer
// fields distinguish "unset" from an explicit false/zero, so command-line
// flags can override only what the file left out.
type FileConfig struct {
	Full            *bool    `yaml:"full,omitempty"`
	Recursive       *bool    `yaml:"recursive,omitempty"`
	Padding         *int     `yaml:"padding,omitempty"`
	Ignore          []string `yaml:"ignore,omitempty"`
	ContinueOnError *bool    `yaml:"continue_on_error,omitempty"`
}

// Apply copies the file defaults into cfg. Fields left unset in the file are
// not touched.
func (fc *FileConfig) Apply(ctx context.Context, cfg *Config) {
	logger := zerolog.Ctx(ctx)

	if fc.Full != nil {
		cfg.Full = *fc.Full
	}
	if fc.Recursive != nil {
		cfg.Recursive = *fc.Recursive
	}
	if fc.Padding != nil {
		cfg.Padding = *fc.Padding
	}
	if len(fc.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, fc.Ignore...)
	}
	if fc.ContinueOnError != nil {
		cfg.ContinueOnError = *fc.ContinueOnError
	}

	logger.Debug().
		Bool("full", cfg.Full).
		Bool("recursive", cfg.Recursive).
		Int("padding", cfg.Padding).
		Strs("ignore", cfg.Ignore).
		Msg("applied config file defaults")
}
