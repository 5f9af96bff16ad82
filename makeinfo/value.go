package makeinfo

import (
	"encoding/json"
	"slices"
)

// Kind discriminates the shape held by a Value.
type Kind uint8

const (
	// Absent means the key was not found in the Makefile.
	Absent Kind = iota
	// ScalarKind is a single-line assignment.
	ScalarKind
	// ListKind is a continuation block.
	ListKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case ListKind:
		return "list"
	default:
		return "absent"
	}
}

// Value is a field value: absent, a scalar string or an ordered list.
// The zero Value is absent.
type Value struct {
	kind   Kind
	scalar string
	list   []string
}

// Scalar returns a scalar Value.
func Scalar(s string) Value {
	return Value{kind: ScalarKind, scalar: s}
}

// List returns a list Value holding a copy of items. A nil slice yields
// an empty list, not an absent value.
func List(items []string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: ListKind, list: cp}
}

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool { return v.kind == Absent }

// Str returns the scalar and true, or "" and false if v is not a scalar.
func (v Value) Str() (string, bool) {
	if v.kind != ScalarKind {
		return "", false
	}
	return v.scalar, true
}

// Items returns a copy of the list and true, or nil and false if v is
// not a list.
func (v Value) Items() ([]string, bool) {
	if v.kind != ListKind {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Equal reports whether v and o have the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ScalarKind:
		return v.scalar == o.scalar
	case ListKind:
		return slices.Equal(v.list, o.list)
	}
	return true
}

// isDefault reports whether v is absent, an empty scalar or an empty list.
func (v Value) isDefault() bool {
	switch v.kind {
	case ScalarKind:
		return v.scalar == ""
	case ListKind:
		return len(v.list) == 0
	}
	return true
}

func (v Value) clone() Value {
	if v.kind == ListKind {
		return List(v.list)
	}
	return v
}

// native returns the value as string, []string or nil.
func (v Value) native() any {
	switch v.kind {
	case ScalarKind:
		return v.scalar
	case ListKind:
		return slices.Clone(v.list)
	}
	return nil
}

// MarshalJSON encodes scalars as strings, lists as arrays and absent
// values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.native())
}
