package makeinfo

import (
	"bytes"
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// Field identifiers of the default schema.
const (
	FieldTarget      = "target"
	FieldCPU         = "cpu"
	FieldTargetMCU   = "targetMCU"
	FieldFPU         = "fpu"
	FieldFloatABI    = "floatAbi"
	FieldMCU         = "mcu"
	FieldLDScript    = "ldscript"
	FieldCSources    = "cSources"
	FieldCXXSources  = "cxxSources"
	FieldASMSources  = "asmSources"
	FieldCDefs       = "cDefs"
	FieldCXXDefs     = "cxxDefs"
	FieldASDefs      = "asDefs"
	FieldCIncludes   = "cIncludes"
	FieldCXXIncludes = "cxxIncludes"
	FieldASIncludes  = "asIncludes"
)

// Field is a named schema entry.
type Field struct {
	Name  string
	Value Value
}

// Schema is an ordered set of fields. Values are never shared between
// schemas: every method returning a Schema returns an independent copy.
type Schema struct {
	fields []Field
}

// NewSchema returns a schema holding copies of fields, in order. A later
// field with the same name replaces the earlier one in place.
func NewSchema(fields ...Field) Schema {
	var s Schema
	for _, f := range fields {
		s = s.With(f.Name, f.Value)
	}
	return s
}

// DefaultSchema returns a freshly built schema with the fields found in
// CubeMX Makefiles: empty scalars for flags and empty lists for sources,
// definitions and include paths.
func DefaultSchema() Schema {
	empty := Scalar("")
	none := List(nil)
	return NewSchema(
		Field{FieldTarget, empty},
		Field{FieldCPU, empty},
		Field{FieldTargetMCU, empty},
		Field{FieldFPU, empty},
		Field{FieldFloatABI, empty},
		Field{FieldMCU, empty},
		Field{FieldLDScript, empty},
		Field{FieldCSources, none},
		Field{FieldCXXSources, none},
		Field{FieldASMSources, none},
		Field{FieldCDefs, none},
		Field{FieldCXXDefs, none},
		Field{FieldASDefs, none},
		Field{FieldCIncludes, none},
		Field{FieldCXXIncludes, none},
		Field{FieldASIncludes, none},
	)
}

// Len returns the number of fields.
func (s Schema) Len() int { return len(s.fields) }

// Names returns the field identifiers in order.
func (s Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns a copy of the fields in order.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = Field{Name: f.Name, Value: f.Value.clone()}
	}
	return out
}

func (s Schema) index(name string) int {
	return slices.IndexFunc(s.fields, func(f Field) bool { return f.Name == name })
}

// Get returns the value of the named field.
func (s Schema) Get(name string) (Value, bool) {
	i := s.index(name)
	if i < 0 {
		return Value{}, false
	}
	return s.fields[i].Value.clone(), true
}

// Scalar returns the named field as a string, "" if it is missing or
// not a scalar.
func (s Schema) Scalar(name string) string {
	v, _ := s.Get(name)
	str, _ := v.Str()
	return str
}

// List returns the named field as a list, nil if it is missing or not
// a list.
func (s Schema) List(name string) []string {
	v, _ := s.Get(name)
	items, _ := v.Items()
	return items
}

// With returns a copy of s with the named field set to v. A missing
// field is appended.
func (s Schema) With(name string, v Value) Schema {
	out := Schema{fields: s.Fields()}
	if i := out.index(name); i >= 0 {
		out.fields[i].Value = v.clone()
		return out
	}
	out.fields = append(out.fields, Field{Name: name, Value: v.clone()})
	return out
}

// Select returns the named fields in schema order. Naming a field the
// schema lacks is an error.
func (s Schema) Select(names ...string) (Schema, error) {
	for _, name := range names {
		if s.index(name) < 0 {
			return Schema{}, unknownFieldError(name)
		}
	}
	var out Schema
	for _, f := range s.fields {
		if slices.Contains(names, f.Name) {
			out.fields = append(out.fields, Field{Name: f.Name, Value: f.Value.clone()})
		}
	}
	return out, nil
}

// Map returns the fields as strings and string slices keyed by name.
// Absent fields map to nil.
func (s Schema) Map() map[string]any {
	m := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		m[f.Name] = f.Value.native()
	}
	return m
}

// MarshalJSON encodes s as an object with keys in schema order.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes s as a mapping with keys in schema order.
func (s Schema) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range s.fields {
		node.Content = append(node.Content, strNode(f.Name), valueNode(f.Value))
	}
	return node, nil
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func valueNode(v Value) *yaml.Node {
	switch v.kind {
	case ScalarKind:
		return strNode(v.scalar)
	case ListKind:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			seq.Content = append(seq.Content, strNode(item))
		}
		return seq
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// Info is a typed view of the default schema fields.
type Info struct {
	Target      string   `json:"target" yaml:"target"`
	CPU         string   `json:"cpu" yaml:"cpu"`
	TargetMCU   string   `json:"targetMCU" yaml:"targetMCU"`
	FPU         string   `json:"fpu" yaml:"fpu"`
	FloatABI    string   `json:"floatAbi" yaml:"floatAbi"`
	MCU         string   `json:"mcu" yaml:"mcu"`
	LDScript    string   `json:"ldscript" yaml:"ldscript"`
	CSources    []string `json:"cSources" yaml:"cSources"`
	CXXSources  []string `json:"cxxSources" yaml:"cxxSources"`
	ASMSources  []string `json:"asmSources" yaml:"asmSources"`
	CDefs       []string `json:"cDefs" yaml:"cDefs"`
	CXXDefs     []string `json:"cxxDefs" yaml:"cxxDefs"`
	ASDefs      []string `json:"asDefs" yaml:"asDefs"`
	CIncludes   []string `json:"cIncludes" yaml:"cIncludes"`
	CXXIncludes []string `json:"cxxIncludes" yaml:"cxxIncludes"`
	ASIncludes  []string `json:"asIncludes" yaml:"asIncludes"`
}

// Info returns the default schema fields of s as a struct. Fields that
// are missing or of the other shape are left zero; list fields are
// never nil.
func (s Schema) Info() Info {
	list := func(name string) []string {
		if items := s.List(name); items != nil {
			return items
		}
		return []string{}
	}
	return Info{
		Target:      s.Scalar(FieldTarget),
		CPU:         s.Scalar(FieldCPU),
		TargetMCU:   s.Scalar(FieldTargetMCU),
		FPU:         s.Scalar(FieldFPU),
		FloatABI:    s.Scalar(FieldFloatABI),
		MCU:         s.Scalar(FieldMCU),
		LDScript:    s.Scalar(FieldLDScript),
		CSources:    list(FieldCSources),
		CXXSources:  list(FieldCXXSources),
		ASMSources:  list(FieldASMSources),
		CDefs:       list(FieldCDefs),
		CXXDefs:     list(FieldCXXDefs),
		ASDefs:      list(FieldASDefs),
		CIncludes:   list(FieldCIncludes),
		CXXIncludes: list(FieldCXXIncludes),
		ASIncludes:  list(FieldASIncludes),
	}
}
