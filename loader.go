package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const defaultMakefile = "./Makefile"

// resolveMakefilePath expands variables in location and points it at a
// Makefile: an empty location is ./Makefile and a location not naming a
// Makefile is taken as its directory.
func resolveMakefilePath(location string, logger *slog.Logger) string {
	if location == "" {
		location = defaultMakefile
	}
	location, undefined := ExpandVars(location)
	for _, name := range undefined {
		logger.Warn("undefined variable in Makefile location", "var", name)
	}
	if !strings.Contains(location, "Makefile") {
		location = filepath.Join(location, "Makefile")
	}
	return location
}

// loadMakefile returns the text of the Makefile at location and the
// path it was read from.
func loadMakefile(location string, logger *slog.Logger) (string, string, error) {
	path := resolveMakefilePath(location, logger)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", path, raise(ErrCodeSourceUnavailable, err, path)
	}
	logger.Debug("makefile loaded", "path", path, "bytes", len(data))
	return string(data), path, nil
}
