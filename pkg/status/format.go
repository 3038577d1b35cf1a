package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/renagex/renagex/pkg/match"
)

// MatchFormatter defines how matches and run results are rendered for the
// console.
type MatchFormatter interface {
	// FormatMatch renders one match line: source, optional target, groups.
	FormatMatch(m match.Match) string

	// FormatNoMatch renders the per-file skip warning.
	FormatNoMatch(name string) string

	// FormatSummary renders the end-of-run summary line.
	FormatSummary(matched, renamed int, dryRun bool) string
}

// DefaultMatchFormatter provides the default console rendering.
type DefaultMatchFormatter struct{}

// NewDefaultMatchFormatter creates a new DefaultMatchFormatter.
func NewDefaultMatchFormatter() *DefaultMatchFormatter {
	return &DefaultMatchFormatter{}
}

// FormatMatch formats a match as "source -> target (1='a', 2='b')". The
// arrow part is omitted for match-only runs, group listing when the pattern
// has no groups.
func (f *DefaultMatchFormatter) FormatMatch(m match.Match) string {
	var sb strings.Builder
	sb.WriteString(m.Source)
	if m.Renamed() {
		sb.WriteString(color.New(color.FgCyan).Sprint(" -> "))
		sb.WriteString(color.New(color.Bold).Sprint(m.Target))
	}
	if groups := FormatGroups(m.Groups); groups != "" {
		sb.WriteString(color.New(color.Faint).Sprint(" (" + groups + ")"))
	}
	return sb.String()
}

// FormatNoMatch formats the skip warning for an unmatched file.
func (f *DefaultMatchFormatter) FormatNoMatch(name string) string {
	return fmt.Sprintf("no match: %s", name)
}

// FormatSummary formats the end-of-run summary.
func (f *DefaultMatchFormatter) FormatSummary(matched, renamed int, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("%d files matched (dry run)", matched)
	}
	return fmt.Sprintf("%d files matched, %d renamed", matched, renamed)
}

// FormatGroups renders capture groups as "1='a', 2=absent" in ascending
// index order.
func FormatGroups(groups []match.Group) string {
	if len(groups) == 0 {
		return ""
	}

	parts := make([]string, 0, len(groups))
	for i, g := range groups {
		if g.Ok {
			parts = append(parts, fmt.Sprintf("%d='%s'", i+1, g.Text))
		} else {
			parts = append(parts, fmt.Sprintf("%d=absent", i+1))
		}
	}
	return strings.Join(parts, ", ")
}
