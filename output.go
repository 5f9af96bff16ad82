package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/agilira/mkinfo/makeinfo"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatHCL   = "hcl"
	formatTable = "table"
)

var (
	extractFormats = []string{formatJSON, formatYAML, formatHCL}
	fieldsFormats  = []string{formatTable, formatJSON, formatYAML}
)

func validFormat(format string, allowed []string) bool {
	return slices.Contains(allowed, format)
}

// writeSchema encodes s to w in the given format.
func writeSchema(w io.Writer, s makeinfo.Schema, format string) error {
	var err error
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(s)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		err = enc.Encode(s)
	case formatHCL:
		_, err = w.Write(hclFile(s).Bytes())
	default:
		return fmt.Errorf("unsupported format %q, want one of %s", format, strings.Join(extractFormats, ", "))
	}
	if err != nil {
		return raise(ErrCodeOutput, err, format)
	}
	return nil
}

// hclFile renders every field as a top-level attribute.
func hclFile(s makeinfo.Schema) *hclwrite.File {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, field := range s.Fields() {
		body.SetAttributeValue(field.Name, ctyValue(field.Value))
	}
	return f
}

func ctyValue(v makeinfo.Value) cty.Value {
	if s, ok := v.Str(); ok {
		return cty.StringVal(s)
	}
	items, ok := v.Items()
	if !ok {
		return cty.NullVal(cty.String)
	}
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, item := range items {
		vals[i] = cty.StringVal(item)
	}
	return cty.ListVal(vals)
}

// writeValue prints a scalar on one line and a list one entry per line.
// An absent value prints nothing.
func writeValue(w io.Writer, v makeinfo.Value) error {
	if s, ok := v.Str(); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	items, _ := v.Items()
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}

type FieldInfo struct {
	Name    string `json:"name" yaml:"name"`
	Key     string `json:"key" yaml:"key"`
	Shape   string `json:"shape" yaml:"shape"`
	Derived bool   `json:"derived,omitempty" yaml:"derived,omitempty"`
}

func describeFields(s makeinfo.Schema) []FieldInfo {
	var fields []FieldInfo
	for _, f := range s.Fields() {
		info := FieldInfo{
			Name:  f.Name,
			Key:   makeinfo.MakefileKey(f.Name),
			Shape: f.Value.Kind().String(),
		}
		if f.Name == makeinfo.FieldTargetMCU {
			info.Key = "-"
			info.Derived = true
		}
		fields = append(fields, info)
	}
	return fields
}

func writeFields(w io.Writer, s makeinfo.Schema, format string) error {
	fields := describeFields(s)
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"fields": fields,
			"total":  len(fields),
		})
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(map[string]interface{}{
			"fields": fields,
			"total":  len(fields),
		})
	case formatTable:
		return writeFieldsTable(w, fields)
	}
	return fmt.Errorf("unsupported format %q, want one of %s", format, strings.Join(fieldsFormats, ", "))
}

func writeFieldsTable(w io.Writer, fields []FieldInfo) error {
	fmt.Fprintln(w, "Available fields:")
	fmt.Fprintln(w, "-----------------")

	maxNameLen := 0
	for _, f := range fields {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	for _, f := range fields {
		padding := strings.Repeat(" ", maxNameLen-len(f.Name)+2)
		note := ""
		if f.Derived {
			note = " (derived from cSources)"
		}
		fmt.Fprintf(w, "  %s%s%-14s%s%s\n", f.Name, padding, f.Key, f.Shape, note)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d fields\n", len(fields))
	return err
}
