//go:build mage

package main

import (
	"fmt"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

var fuzzTargets = []string{
	"FuzzExtractSingleLine",
	"FuzzScanBlock",
	"FuzzExtract",
}

// Build compiles the mkinfo binary into bin/.
func Build() error {
	mg.Deps(Vet)
	out := "bin/mkinfo"
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	return sh.RunV("go", "build", "-o", out, ".")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-short", "./...")
}

// Integration runs all tests including the end-to-end ones.
func Integration() error {
	return sh.RunV("go", "test", "./...")
}

// Fuzz runs each parser fuzz target briefly.
func Fuzz() error {
	for _, target := range fuzzTargets {
		fmt.Println("fuzzing", target)
		if err := sh.RunV("go", "test", "./makeinfo", "-run", "^$", "-fuzz", "^"+target+"$", "-fuzztime", "20s"); err != nil {
			return err
		}
	}
	return nil
}
