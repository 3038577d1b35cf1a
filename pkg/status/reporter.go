// Package status reports matches and rename outcomes to the user. It is
// purely observational: nothing here affects control flow in the engine.
package status

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/renagex/renagex/pkg/match"
)

// 📢 Reporter receives per-match and per-run notifications from the engine.
type Reporter interface {
	// Match is invoked once per match after the whole match set is built.
	Match(ctx context.Context, m match.Match)
	// NoMatch is invoked for every file the pattern did not match.
	NoMatch(ctx context.Context, name string)
	// Renamed is invoked after a successful rename.
	Renamed(ctx context.Context, m match.Match)
	// RenameFailed is invoked when renaming a single file fails.
	RenameFailed(ctx context.Context, m match.Match, err error)
	// Summary is invoked once at the end of a successful run.
	Summary(ctx context.Context, matched, renamed int, dryRun bool)
}

// ConsoleReporter renders matches with pterm and mirrors everything to the
// structured logger carried in the context.
type ConsoleReporter struct {
	formatter MatchFormatter
}

// NewConsoleReporter creates a new ConsoleReporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{formatter: NewDefaultMatchFormatter()}
}

// Match implements Reporter.
func (r *ConsoleReporter) Match(ctx context.Context, m match.Match) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "•"}).Println(r.formatter.FormatMatch(m))

	event := zerolog.Ctx(ctx).Info().Str("source", m.Source)
	if m.Renamed() {
		event = event.Str("target", m.Target)
	}
	event.Str("groups", FormatGroups(m.Groups)).Msg("matched")
}

// NoMatch implements Reporter.
func (r *ConsoleReporter) NoMatch(ctx context.Context, name string) {
	pterm.Warning.Println(r.formatter.FormatNoMatch(name))
	zerolog.Ctx(ctx).Warn().Str("file", name).Msg("no match")
}

// Renamed implements Reporter.
func (r *ConsoleReporter) Renamed(ctx context.Context, m match.Match) {
	zerolog.Ctx(ctx).Debug().
		Str("source", m.Source).
		Str("target", m.Target).
		Msg("renamed")
}

// RenameFailed implements Reporter.
func (r *ConsoleReporter) RenameFailed(ctx context.Context, m match.Match, err error) {
	pterm.Error.Printfln("renaming %s -> %s failed", m.Source, m.Target)
	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("source", m.Source).
		Str("target", m.Target).
		Msg("rename failed")
}

// Summary implements Reporter.
func (r *ConsoleReporter) Summary(ctx context.Context, matched, renamed int, dryRun bool) {
	pterm.Success.Println(r.formatter.FormatSummary(matched, renamed, dryRun))
	zerolog.Ctx(ctx).Info().
		Int("matched", matched).
		Int("renamed", renamed).
		Bool("dry_run", dryRun).
		Msg("run complete")
}

// Nop is a Reporter that discards everything. Useful for library callers
// that only want the returned match set.
type Nop struct{}

func (Nop) Match(context.Context, match.Match)               {}
func (Nop) NoMatch(context.Context, string)                  {}
func (Nop) Renamed(context.Context, match.Match)             {}
func (Nop) RenameFailed(context.Context, match.Match, error) {}
func (Nop) Summary(context.Context, int, int, bool)          {}
