package main

import (
	"os"
	"strings"
)

// GetVar resolves a location variable: the builtin $cwd, else the
// environment. The second result is false when the name is undefined.
func GetVar(name string) (string, bool) {
	name = strings.Trim(name, "${}")
	switch name {
	case "cwd":
		path, err := os.Getwd()
		return path, err == nil
	default:
		return os.LookupEnv(name)
	}
}
