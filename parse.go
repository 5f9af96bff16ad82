package main

import (
	"regexp"
	"strings"
)

// $var or ${var}
var varPattern = regexp.MustCompile(`\$\w+|\$\{[^}]+\}`)

// ExpandVars substitutes variables in text. Undefined variables are left
// as written and returned in order of appearance.
func ExpandVars(text string) (string, []string) {
	var undefined []string
	expanded := varPattern.ReplaceAllStringFunc(text, func(m string) string {
		name := strings.Trim(strings.TrimPrefix(m, "$"), "{}")
		val, ok := GetVar(name)
		if !ok {
			undefined = append(undefined, m)
			return m
		}
		return val
	})
	return expanded, undefined
}
