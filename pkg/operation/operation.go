// Package operation orchestrates a bulk-rename run: building the match set,
// checking target collisions, and applying renames.
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/renagex/renagex/pkg/config"
	"github.com/renagex/renagex/pkg/match"
	"github.com/renagex/renagex/pkg/status"
	"github.com/renagex/renagex/pkg/walker"
)

// 🎯 Operator is the single entry point for a bulk-rename run.
type Operator interface {
	// Run matches files, expands targets, checks duplicates and, unless the
	// run is a dry run, renames the files. It returns the ordered match set.
	Run(ctx context.Context) ([]match.Match, error)
}

// 🔧 Options contains the collaborators of an operator.
type Options struct {
	// Config is the validated run configuration.
	Config *config.Config
	// Lister enumerates candidate files.
	Lister walker.Lister
	// Reporter receives observational per-match and per-run events.
	Reporter status.Reporter
}

// 🏭 New creates a new operator with the given options.
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Lister == nil {
		return nil, errors.New("lister is required")
	}
	if opts.Reporter == nil {
		opts.Reporter = status.Nop{}
	}
	return &operator{
		config:   opts.Config,
		lister:   opts.Lister,
		reporter: opts.Reporter,
	}, nil
}

type operator struct {
	config   *config.Config
	lister   walker.Lister
	reporter status.Reporter
}

// Run implements Operator. The run proceeds strictly in phases: matching,
// expansion, duplicate validation, renaming. Dry runs stop before renaming;
// any fatal error aborts before a single file is touched, except filesystem
// errors inside the rename phase itself, which leave earlier renames applied.
func (o *operator) Run(ctx context.Context) ([]match.Match, error) {
	cfg := o.config
	if !cfg.DryRun && cfg.Replacement == "" {
		// Guard for callers that skipped config.Validate: renaming without a
		// template must fail before any matching work is done.
		return nil, config.ErrMissingReplacement
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("pattern", cfg.Pattern).
		Str("replacement", cfg.Replacement).
		Bool("full", cfg.Full).
		Bool("dry_run", cfg.DryRun).
		Int("padding", cfg.Padding).
		Msg("matching files")

	matcher, err := match.NewMatcher(cfg.Pattern, cfg.Full)
	if err != nil {
		return nil, err
	}

	matches, err := o.buildMatches(ctx, matcher)
	if err != nil {
		return nil, err
	}

	for _, m := range matches {
		o.reporter.Match(ctx, m)
	}

	if cfg.Replacement != "" {
		if err := checkDuplicates(matches); err != nil {
			return nil, err
		}
	}

	if cfg.DryRun {
		o.reporter.Summary(ctx, len(matches), 0, true)
		return matches, nil
	}

	// Config validation guarantees a replacement template by this point.
	renamed, err := o.renameMatches(ctx, matches)
	if err != nil {
		return matches, err
	}

	o.reporter.Summary(ctx, len(matches), renamed, false)
	return matches, nil
}
