// Package walker lists the candidate files for a run. It is the only place
// that traverses the filesystem for discovery; the matching engine receives
// plain relative path strings.
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Lister enumerates regular files under a root directory as relative,
// slash-separated path strings. Ordering is not guaranteed; callers sort.
type Lister interface {
	ListFiles(ctx context.Context, root string, recursive bool) ([]string, error)
}

// OSLister lists files from the real filesystem. Paths matching any of the
// Ignore doublestar patterns are skipped.
type OSLister struct {
	Ignore []string
}

// NewOSLister creates a new OSLister with the given ignore patterns.
func NewOSLister(ignore []string) *OSLister {
	return &OSLister{Ignore: ignore}
}

// ListFiles implements Lister. Non-recursive mode lists only direct children
// that are regular files; recursive mode lists every regular file under the
// tree.
func (l *OSLister) ListFiles(ctx context.Context, root string, recursive bool) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Bool("recursive", recursive).Msg("listing files")

	var names []string
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("walking directory %s: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, errors.Errorf("reading directory %s: %w", root, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				names = append(names, entry.Name())
			}
		}
	}

	filtered, err := l.filterIgnored(names)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(filtered)).Msg("files listed")
	return filtered, nil
}

// filterIgnored drops names matching any ignore pattern.
func (l *OSLister) filterIgnored(names []string) ([]string, error) {
	if len(l.Ignore) == 0 {
		return names, nil
	}

	filtered := names[:0]
	for _, name := range names {
		ignored := false
		for _, pattern := range l.Ignore {
			matched, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, errors.Errorf("matching ignore pattern %q: %w", pattern, err)
			}
			if matched {
				ignored = true
				break
			}
		}
		if !ignored {
			filtered = append(filtered, name)
		}
	}
	return filtered, nil
}
