// Package match implements the matching and expansion engine: applying a
// filename pattern, padding numeric capture groups, and expanding a
// replacement template into a target name.
package match

// Group is a single capture group of a pattern match. Ok distinguishes a
// group that matched the empty string from one that did not participate in
// the match at all.
type Group struct {
	Text string
	Ok   bool
}

// Capture is the raw result of applying a pattern to a filename, before any
// group transformation.
type Capture struct {
	// Groups holds capture groups in pattern order; Groups[i] is group i+1.
	Groups []Group
	// Start and End delimit the matched span within the input string.
	Start int
	End   int
	// Text is the full matched text.
	Text string
}

// Match is one matched file and its computed fate. It is built once by the
// planner and never mutated afterwards.
type Match struct {
	// Source is the original relative path, as discovered.
	Source string
	// Target is the computed new relative path. Empty when no replacement
	// template was supplied.
	Target string
	// Groups holds the post-padding capture groups; Groups[i] is group i+1.
	Groups []Group
	// Start, End and Text describe the matched span within Source.
	Start int
	End   int
	Text  string
}

// Renamed reports whether a target name was computed for this match.
func (m Match) Renamed() bool {
	return m.Target != ""
}
