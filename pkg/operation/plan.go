package operation

import (
	"context"
	"sort"

	"gitlab.com/tozd/go/errors"

	"github.com/renagex/renagex/pkg/match"
)

// buildMatches lists the candidate files, sorts them lexicographically so
// the result is stable regardless of filesystem enumeration order, and runs
// each through the match → pad → expand pipeline. Unmatched files are
// reported and dropped; the batch continues.
func (o *operator) buildMatches(ctx context.Context, matcher *match.Matcher) ([]match.Match, error) {
	cfg := o.config

	names, err := o.lister.ListFiles(ctx, cfg.Root, cfg.Recursive)
	if err != nil {
		return nil, errors.Errorf("listing files: %w", err)
	}
	sort.Strings(names)

	var matches []match.Match
	for _, name := range names {
		capture, ok := matcher.Match(name)
		if !ok {
			o.reporter.NoMatch(ctx, name)
			continue
		}

		groups := match.PadGroups(capture.Groups, cfg.Padding)

		m := match.Match{
			Source: name,
			Groups: groups,
			Start:  capture.Start,
			End:    capture.End,
			Text:   capture.Text,
		}

		if cfg.Replacement != "" {
			// Validated against every match, also in dry-run mode: a bad
			// template must fail loudly before anything is renamed.
			if err := match.ValidateTemplate(cfg.Replacement, matcher.NumGroups()); err != nil {
				return nil, errors.Errorf("validating replacement template: %w", err)
			}
			m.Target = match.Expand(cfg.Replacement, groups)
		}

		matches = append(matches, m)
	}

	return matches, nil
}
