package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"
)

// AppVersion is overridden at link time by release builds.
var AppVersion = "1.0.0"

func newApp(out io.Writer) *orpheus.App {
	app := orpheus.New("mkinfo").
		SetDescription("Extract build configuration from STM32CubeMX Makefiles").
		SetVersion(AppVersion).
		AddGlobalFlag("config", "c", "", "Configuration file (default mkinfo.yaml)").
		AddGlobalFlag("log-level", "", "", "Log level: debug, info, warn, error").
		AddGlobalFlag("log-format", "", "", "Log format: text or json").
		AddGlobalBoolFlag("verbose", "", false, "Enable debug logging")

	extractCmd := orpheus.NewCommand("extract", "Extract all fields from a Makefile").
		SetHandler(extractCommand(out)).
		AddFlag("format", "f", "", "Output format: json, yaml or hcl").
		AddFlag("fields", "", "", "Comma-separated fields to print").
		AddBoolFlag("strict", "", false, "Fail on unterminated continuation blocks")

	getCmd := orpheus.NewCommand("get", "Print a single field").
		SetHandler(getCommand(out))

	targetCmd := orpheus.NewCommand("target", "Print the MCU family derived from the sources").
		SetHandler(targetCommand(out))

	fieldsCmd := orpheus.NewCommand("fields", "List the known fields and their Makefile keys").
		SetHandler(fieldsCommand(out)).
		AddFlag("format", "f", "", "Output format: table, json or yaml")

	app.AddCommand(extractCmd)
	app.AddCommand(getCmd)
	app.AddCommand(targetCmd)
	app.AddCommand(fieldsCmd)
	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
