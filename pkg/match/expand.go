package match

import (
	"fmt"
	"strconv"
	"strings"
)

// Case-directive markers recognized in replacement templates. `\L\N` expands
// group N lower-cased, `\U\N` upper-cased.
const (
	lowerMarker = `\L`
	upperMarker = `\U`
)

// InvalidReplacementError reports a back-reference in a replacement template
// that does not correspond to any capture group in the pattern.
type InvalidReplacementError struct {
	Template string
	Group    int
}

func (e *InvalidReplacementError) Error() string {
	return fmt.Sprintf("invalid replacement template %q: group reference \\%d does not exist in pattern", e.Template, e.Group)
}

// ValidateTemplate checks every group back-reference in template against the
// number of capture groups in the pattern. Case-directive markers are
// stripped before scanning, so `\L\1` validates as a reference to group 1.
// Validation runs even in dry-run mode, before any expansion.
func ValidateTemplate(template string, groupCount int) error {
	simplified := strings.ReplaceAll(template, lowerMarker, "")
	simplified = strings.ReplaceAll(simplified, upperMarker, "")

	for i := 0; i < len(simplified); i++ {
		if simplified[i] != '\\' {
			continue
		}
		if i+1 < len(simplified) && simplified[i+1] == '\\' {
			// Escaped backslash, not a reference.
			i++
			continue
		}

		j := i + 1
		for j < len(simplified) && simplified[j] >= '0' && simplified[j] <= '9' {
			j++
		}
		if j == i+1 {
			continue
		}

		n, _ := strconv.Atoi(simplified[i+1 : j])
		if n < 1 || n > groupCount {
			return &InvalidReplacementError{Template: template, Group: n}
		}
		i = j - 1
	}
	return nil
}

// Expand builds the target name from template and the post-padding groups.
// Groups are substituted in ascending index order; for each group the
// lower-case and upper-case directive forms are replaced before the plain
// back-reference, so the plain substitution cannot consume a directive's
// reference. Absent groups expand to the empty string. Expansion is
// deterministic: the same template and groups always yield the same name.
func Expand(template string, groups []Group) string {
	name := template
	for i, g := range groups {
		value := ""
		if g.Ok {
			value = g.Text
		}

		if strings.Contains(name, lowerMarker) {
			name = strings.ReplaceAll(name, lowerMarker+ref(i+1), strings.ToLower(value))
		}
		if strings.Contains(name, upperMarker) {
			name = strings.ReplaceAll(name, upperMarker+ref(i+1), strings.ToUpper(value))
		}
		name = strings.ReplaceAll(name, ref(i+1), value)
	}
	return name
}
