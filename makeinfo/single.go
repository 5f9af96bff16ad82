package makeinfo

import (
	"regexp"
	"strings"
)

// assignmentPattern matches "KEY = value" at the start of a line,
// case-insensitively. The value is the rest of the line.
func assignmentPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*(.*)$`)
}

// ExtractSingleLine returns the value of the last "KEY = value" line in
// makefile and true, or "" and false when no line assigns key. The value
// is returned as written, continuation marker included.
func ExtractSingleLine(key, makefile string) (string, bool) {
	if key == "" {
		return "", false
	}
	re := assignmentPattern(key)

	value, found := "", false
	for _, line := range splitLines(makefile) {
		if m := re.FindStringSubmatch(line); m != nil {
			value, found = m[1], true
		}
	}
	return value, found
}

// hasContinuation reports whether a raw value spans several lines.
func hasContinuation(raw string) bool {
	return strings.Contains(raw, `\`)
}
