package match

import (
	"regexp"
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// Matcher applies a compiled filename pattern to candidate names.
type Matcher struct {
	re     *regexp.Regexp
	groups int
}

// NewMatcher compiles pattern into a Matcher. With full set, the whole
// filename must match; otherwise the pattern is searched anywhere in the
// name and the first occurrence wins.
func NewMatcher(pattern string, full bool) (*Matcher, error) {
	expr := pattern
	if full {
		// Wrapping in a non-capturing group keeps capture indices stable.
		expr = `\A(?:` + pattern + `)\z`
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", pattern, err)
	}

	return &Matcher{re: re, groups: re.NumSubexp()}, nil
}

// NumGroups returns the number of capture groups in the pattern.
func (m *Matcher) NumGroups() int {
	return m.groups
}

// Match applies the pattern to name. It returns the capture result and true,
// or a zero Capture and false when the name does not match.
func (m *Matcher) Match(name string) (Capture, bool) {
	idx := m.re.FindStringSubmatchIndex(name)
	if idx == nil {
		return Capture{}, false
	}

	groups := make([]Group, m.groups)
	for i := 1; i <= m.groups; i++ {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo >= 0 {
			groups[i-1] = Group{Text: name[lo:hi], Ok: true}
		}
	}

	return Capture{
		Groups: groups,
		Start:  idx[0],
		End:    idx[1],
		Text:   name[idx[0]:idx[1]],
	}, true
}

// PadGroups left-pads every all-digit group to at least width characters
// with '0'. Non-numeric or absent groups pass through unchanged. A width of
// zero disables padding. The input slice is not modified.
func PadGroups(groups []Group, width int) []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	if width <= 0 {
		return out
	}

	for i, g := range out {
		if !g.Ok || !isDecimal(g.Text) {
			continue
		}
		for len(out[i].Text) < width {
			out[i].Text = "0" + out[i].Text
		}
	}
	return out
}

// isDecimal reports whether s is non-empty and consists only of decimal
// digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ref returns the textual back-reference form of group index (e.g. `\2`).
func ref(index int) string {
	return `\` + strconv.Itoa(index)
}
