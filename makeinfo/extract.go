package makeinfo

import (
	"errors"
	"log/slog"
)

// Option configures Extract.
type Option func(*options)

type options struct {
	strict bool
	logger *slog.Logger
}

// Strict makes Extract report continuation blocks that run to the end of
// the input. The populated schema is still returned alongside the error.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger sets the logger used for per-field debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ExtractField looks up a single field identifier in makefile. The result
// is absent when the key is missing or assigned an empty value, a list
// when the assignment is a continuation block and a scalar otherwise.
func ExtractField(field, makefile string) Value {
	v, _ := extractKey(MakefileKey(field), makefile)
	return v
}

func extractKey(key, makefile string) (Value, Block) {
	raw, found := ExtractSingleLine(key, makefile)
	if !found || raw == "" {
		return Value{}, Block{}
	}
	if !hasContinuation(raw) {
		return Scalar(raw), Block{}
	}
	b := ScanBlock(key, makefile)
	return List(b.Entries), b
}

// Extract populates a copy of schema from makefile and returns it; schema
// itself is not modified. Fields whose key is missing keep their value
// from schema. targetMCU is not looked up: when it is still empty it is
// derived from the cSources field.
//
// The error is non-nil only in strict mode, when at least one block is
// unterminated.
func Extract(schema Schema, makefile string, opts ...Option) (Schema, error) {
	o := newOptions(opts)
	out := Schema{fields: schema.Fields()}

	var errs []error
	for i, f := range out.fields {
		if f.Name == FieldTargetMCU {
			continue
		}
		key := MakefileKey(f.Name)
		v, b := extractKey(key, makefile)
		if v.IsAbsent() {
			o.logger.Debug("field not present", "field", f.Name, "key", key)
			continue
		}
		if b.Unterminated() {
			o.logger.Warn("continuation block not terminated", "field", f.Name, "key", key, "entries", len(b.Entries))
			if o.strict {
				errs = append(errs, malformedBlockError(f.Name, key, len(b.Entries)))
			}
		}
		o.logger.Debug("field extracted", "field", f.Name, "key", key, "kind", v.Kind().String())
		out.fields[i].Value = v
	}

	if i := out.index(FieldTargetMCU); i >= 0 && out.fields[i].Value.Kind() != ListKind && out.fields[i].Value.isDefault() {
		if mcu, ok := TargetMCU(out.List(FieldCSources)); ok {
			o.logger.Debug("target derived", "field", FieldTargetMCU, "value", mcu)
			out.fields[i].Value = Scalar(mcu)
		}
	}

	return out, errors.Join(errs...)
}
