package operation

import (
	"fmt"
	"strings"

	"github.com/renagex/renagex/pkg/match"
)

// DuplicateTargetError reports computed target names shared by two or more
// source files. It lists every colliding target.
type DuplicateTargetError struct {
	Targets []string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("found duplicate target filenames: %s", strings.Join(e.Targets, ", "))
}

// checkDuplicates aborts the batch when any two matches share a target name.
// It runs after the match set is built and before any rename is attempted,
// so a collision always means zero renames.
func checkDuplicates(matches []match.Match) error {
	counts := make(map[string]int, len(matches))
	for _, m := range matches {
		counts[m.Target]++
	}

	var duplicates []string
	seen := make(map[string]bool)
	for _, m := range matches {
		if counts[m.Target] > 1 && !seen[m.Target] {
			seen[m.Target] = true
			duplicates = append(duplicates, m.Target)
		}
	}

	if len(duplicates) > 0 {
		return &DuplicateTargetError{Targets: duplicates}
	}
	return nil
}
