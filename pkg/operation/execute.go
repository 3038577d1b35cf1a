package operation

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/renagex/renagex/pkg/match"
)

// renameMatches applies the validated match set file by file, creating
// target parent directories as needed. Renames are independent: there is no
// transaction and no rollback. By default the first failure halts the run,
// leaving earlier renames applied; with ContinueOnError the remaining files
// are still attempted and the failures surface as one error at the end.
func (o *operator) renameMatches(ctx context.Context, matches []match.Match) (int, error) {
	renamed := 0
	var firstErr error

	for _, m := range matches {
		if err := renameFile(o.config.Root, m); err != nil {
			o.reporter.RenameFailed(ctx, m, err)
			if !o.config.ContinueOnError {
				return renamed, err
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		o.reporter.Renamed(ctx, m)
		renamed++
	}

	if firstErr != nil {
		return renamed, errors.Errorf("%d of %d renames failed: %w", len(matches)-renamed, len(matches), firstErr)
	}
	return renamed, nil
}

// renameFile moves one file, creating the target's parent directories.
func renameFile(root string, m match.Match) error {
	source := filepath.Join(root, filepath.FromSlash(m.Source))
	target := filepath.Join(root, filepath.FromSlash(m.Target))

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.Rename(source, target); err != nil {
		return errors.Errorf("renaming %s to %s: %w", m.Source, m.Target, err)
	}
	return nil
}
