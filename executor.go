package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"

	"github.com/agilira/mkinfo/makeinfo"
)

// runtimeEnv is what every command needs after global flags and the
// config file are resolved.
type runtimeEnv struct {
	cfg    Config
	logger *slog.Logger
	out    io.Writer
}

// newRuntimeEnv loads the config file and builds the logger from the
// global flags.
func newRuntimeEnv(ctx *orpheus.Context, out io.Writer) (*runtimeEnv, error) {
	configPath := ctx.GetGlobalFlagString("config")
	cfg, err := loadConfig(configPath, configPath != "")
	if err != nil {
		return nil, err
	}
	if level := ctx.GetGlobalFlagString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if format := ctx.GetGlobalFlagString("log-format"); format != "" {
		cfg.Log.Format = format
	}
	if ctx.GetGlobalFlagBool("verbose") {
		cfg.Log.Level = "debug"
	}
	return &runtimeEnv{
		cfg:    cfg,
		logger: newLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr),
		out:    out,
	}, nil
}

// location picks the Makefile location from the positional argument at
// index i, falling back to the config.
func (e *runtimeEnv) location(args []string, i int) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return e.cfg.Makefile
}

func (e *runtimeEnv) extract(location string, strict bool) (makeinfo.Schema, error) {
	text, path, err := loadMakefile(location, e.logger)
	if err != nil {
		return makeinfo.Schema{}, err
	}
	opts := []makeinfo.Option{makeinfo.WithLogger(e.logger.With("makefile", path))}
	if strict {
		opts = append(opts, makeinfo.Strict())
	}
	return makeinfo.Extract(makeinfo.DefaultSchema(), text, opts...)
}

func splitFields(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ===== COMMAND LOGIC =====

// runExtract prints the populated schema, restricted to fields when
// non-empty.
func runExtract(e *runtimeEnv, location, format, fields string, strict bool) error {
	if format == "" {
		format = e.cfg.Format
	}
	if !validFormat(format, extractFormats) {
		return orpheus.ValidationError("extract", fmt.Sprintf("unsupported format '%s', want one of %s", format, strings.Join(extractFormats, ", ")))
	}

	info, err := e.extract(location, strict || e.cfg.Strict)
	if err != nil {
		return err
	}
	if names := splitFields(fields); len(names) > 0 {
		info, err = info.Select(names...)
		if err != nil {
			return orpheus.NotFoundError("extract", err.Error())
		}
	}
	return writeSchema(e.out, info, format)
}

// runGet prints one field. Fields outside the default schema are looked
// up directly and must be present.
func runGet(e *runtimeEnv, field, location string) error {
	if field == "" {
		return orpheus.ValidationError("get", "a field name is required")
	}

	if _, known := makeinfo.DefaultSchema().Get(field); known {
		info, err := e.extract(location, e.cfg.Strict)
		if err != nil {
			return err
		}
		v, _ := info.Get(field)
		return writeValue(e.out, v)
	}

	text, path, err := loadMakefile(location, e.logger)
	if err != nil {
		return err
	}
	v := makeinfo.ExtractField(field, text)
	if v.IsAbsent() {
		return orpheus.NotFoundError("get", fmt.Sprintf("field '%s' (key %s) not found in %s", field, makeinfo.MakefileKey(field), path))
	}
	return writeValue(e.out, v)
}

// runTarget prints the MCU family derived from the C sources.
func runTarget(e *runtimeEnv, location string) error {
	info, err := e.extract(location, e.cfg.Strict)
	if err != nil {
		return err
	}
	mcu := info.Scalar(makeinfo.FieldTargetMCU)
	if mcu == "" {
		return orpheus.NotFoundError("target", "no *_hal_msp.c file in C_SOURCES, cannot derive the MCU family")
	}
	_, err = fmt.Fprintln(e.out, mcu)
	return err
}

func runFields(e *runtimeEnv, format string) error {
	if format == "" {
		format = formatTable
	}
	if !validFormat(format, fieldsFormats) {
		return orpheus.ValidationError("fields", fmt.Sprintf("unsupported format '%s', want one of %s", format, strings.Join(fieldsFormats, ", ")))
	}
	return writeFields(e.out, makeinfo.DefaultSchema(), format)
}

// ===== ORPHEUS HANDLERS =====

func extractCommand(out io.Writer) func(*orpheus.Context) error {
	return func(ctx *orpheus.Context) error {
		e, err := newRuntimeEnv(ctx, out)
		if err != nil {
			return err
		}
		return runExtract(e, e.location(ctx.Args, 0),
			ctx.GetFlagString("format"),
			ctx.GetFlagString("fields"),
			ctx.GetFlagBool("strict"))
	}
}

func getCommand(out io.Writer) func(*orpheus.Context) error {
	return func(ctx *orpheus.Context) error {
		if len(ctx.Args) == 0 {
			return orpheus.ValidationError("get", "usage: mkinfo get <field> [makefile]")
		}
		e, err := newRuntimeEnv(ctx, out)
		if err != nil {
			return err
		}
		return runGet(e, ctx.Args[0], e.location(ctx.Args, 1))
	}
}

func targetCommand(out io.Writer) func(*orpheus.Context) error {
	return func(ctx *orpheus.Context) error {
		e, err := newRuntimeEnv(ctx, out)
		if err != nil {
			return err
		}
		return runTarget(e, e.location(ctx.Args, 0))
	}
}

func fieldsCommand(out io.Writer) func(*orpheus.Context) error {
	return func(ctx *orpheus.Context) error {
		e, err := newRuntimeEnv(ctx, out)
		if err != nil {
			return err
		}
		return runFields(e, ctx.GetFlagString("format"))
	}
}
