package vtype

import "sort"

// Kind is the tag of the type algebra's variant sum.
type Kind int

const (
	kindInvalid Kind = iota // zero value; never equal to any real variant
	KindNone
	KindBool
	KindInteger
	KindCount
	KindReal
	KindDuration
	KindTime
	KindString
	KindPattern
	KindAddress
	KindSubnet
	KindPort
	KindEnum
	KindVector
	KindSet
	KindMap
	KindRecord
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInteger:
		return "int"
	case KindCount:
		return "count"
	case KindReal:
		return "real"
	case KindDuration:
		return "duration"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	case KindPattern:
		return "pattern"
	case KindAddress:
		return "addr"
	case KindSubnet:
		return "subnet"
	case KindPort:
		return "port"
	case KindEnum:
		return "enum"
	case KindVector:
		return "vector"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	case KindAlias:
		return "alias"
	default:
		return "invalid"
	}
}

// Attribute is a key with an optional string value. Duplicate keys are
// preserved in insertion order, matching spec.md's attribute semantics.
type Attribute struct {
	Key      string
	Value    string
	HasValue bool
}

// Field is one (name, type) pair of a record, in declared order.
type Field struct {
	Name string
	Type Type
}

// Type is an immutable node of the type algebra. Copy by value.
type Type struct {
	kind  Kind
	name  string
	attrs []Attribute

	elem      *Type   // vector/set/alias element type
	key       *Type   // map key type
	value     *Type   // map value type
	fields    []Field // record fields, in declared order
	enumNames []string
}

// --- constructors, one per variant ---

func None() Type      { return Type{kind: KindNone} }
func Bool() Type      { return Type{kind: KindBool} }
func Integer() Type   { return Type{kind: KindInteger} }
func Count() Type     { return Type{kind: KindCount} }
func Real() Type      { return Type{kind: KindReal} }
func Duration() Type  { return Type{kind: KindDuration} }
func Time() Type      { return Type{kind: KindTime} }
func Str() Type       { return Type{kind: KindString} }
func Pattern() Type   { return Type{kind: KindPattern} }
func Address() Type   { return Type{kind: KindAddress} }
func Subnet() Type    { return Type{kind: KindSubnet} }
func Port() Type      { return Type{kind: KindPort} }

// Enum constructs an enumeration type from an ordered sequence of distinct
// field names.
func Enum(names ...string) Type {
	cp := append([]string(nil), names...)
	return Type{kind: KindEnum, enumNames: cp}
}

// Vector constructs a vector<elem> type.
func Vector(elem Type) Type {
	e := elem
	return Type{kind: KindVector, elem: &e}
}

// Set constructs a set<elem> type.
func Set(elem Type) Type {
	e := elem
	return Type{kind: KindSet, elem: &e}
}

// Map constructs a map<key,value> type.
func Map(key, value Type) Type {
	k, v := key, value
	return Type{kind: KindMap, key: &k, value: &v}
}

// Record constructs a record<(name, type)*> type from ordered fields.
func Record(fields ...Field) Type {
	cp := append([]Field(nil), fields...)
	return Type{kind: KindRecord, fields: cp}
}

// Alias constructs an alias<inner> type, wrapping exactly one type.
func Alias(inner Type) Type {
	e := inner
	return Type{kind: KindAlias, elem: &e}
}

// --- setters (value semantics: return a modified copy) ---

// WithName returns a copy of t with its name replaced.
func (t Type) WithName(name string) Type {
	t.name = name
	return t
}

// WithAttributes returns a copy of t with its attribute list replaced.
func (t Type) WithAttributes(attrs []Attribute) Type {
	t.attrs = append([]Attribute(nil), attrs...)
	return t
}

// --- accessors ---

func (t Type) Kind() Kind              { return t.kind }
func (t Type) Name() string            { return t.name }
func (t Type) Attributes() []Attribute { return t.attrs }
func (t Type) Valid() bool             { return t.kind != kindInvalid }

// Elem returns the element type of a vector, set or alias. Panics if t is
// not one of those kinds; callers should check Kind() first.
func (t Type) Elem() Type { return *t.elem }

// Key returns the key type of a map.
func (t Type) Key() Type { return *t.key }

// Value returns the value type of a map.
func (t Type) Value() Type { return *t.value }

// Fields returns the ordered field list of a record. The returned slice
// must not be mutated.
func (t Type) Fields() []Field { return t.fields }

// EnumNames returns the ordered field-name sequence of an enumeration.
func (t Type) EnumNames() []string { return t.enumNames }

// --- introspection predicates ---

// IsBasic reports whether t is a scalar variant (not an enumeration,
// container or record).
func (t Type) IsBasic() bool {
	switch t.kind {
	case KindBool, KindInteger, KindCount, KindReal, KindDuration, KindTime,
		KindString, KindPattern, KindAddress, KindSubnet, KindPort:
		return true
	default:
		return false
	}
}

// IsComplex reports whether t is an enumeration, container or record.
// Alias delegates to the classification of its wrapped type.
func (t Type) IsComplex() bool {
	if t.kind == KindAlias {
		return t.Elem().IsComplex()
	}
	switch t.kind {
	case KindEnum, KindVector, KindSet, KindMap, KindRecord:
		return true
	default:
		return false
	}
}

// IsContainer reports whether t is a vector, set or map.
func (t Type) IsContainer() bool {
	if t.kind == KindAlias {
		return t.Elem().IsContainer()
	}
	switch t.kind {
	case KindVector, KindSet, KindMap:
		return true
	default:
		return false
	}
}

// IsRecursive reports whether t's representation is built from nested
// sub-types: vector, set, map, record or alias.
func (t Type) IsRecursive() bool {
	switch t.kind {
	case KindVector, KindSet, KindMap, KindRecord, KindAlias:
		return true
	default:
		return false
	}
}

// --- equality and ordering ---

// Equal reports structural equality plus name plus attributes. Named types
// are equal only if names match; the zero Type is equal to nothing but
// another zero Type.
func (t Type) Equal(u Type) bool {
	if t.kind != u.kind || t.name != u.name {
		return false
	}
	if !equalAttrs(t.attrs, u.attrs) {
		return false
	}
	return t.structurallyEqual(u)
}

func equalAttrs(a, b []Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// structurallyEqual compares sub-structure only (kind already checked equal).
func (t Type) structurallyEqual(u Type) bool {
	switch t.kind {
	case KindEnum:
		if len(t.enumNames) != len(u.enumNames) {
			return false
		}
		for i := range t.enumNames {
			if t.enumNames[i] != u.enumNames[i] {
				return false
			}
		}
		return true
	case KindVector, KindSet, KindAlias:
		return t.Elem().Equal(u.Elem())
	case KindMap:
		return t.Key().Equal(u.Key()) && t.Value().Equal(u.Value())
	case KindRecord:
		if len(t.fields) != len(u.fields) {
			return false
		}
		for i := range t.fields {
			if t.fields[i].Name != u.fields[i].Name {
				return false
			}
			if !t.fields[i].Type.Equal(u.fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Less defines a deterministic strict weak order over Type values, used for
// canonical sorting. The exact order is an implementation choice; it only
// needs to be total, deterministic and stable across runs.
func (t Type) Less(u Type) bool {
	if t.kind != u.kind {
		return t.kind < u.kind
	}
	if t.name != u.name {
		return t.name < u.name
	}
	if c := compareAttrs(t.attrs, u.attrs); c != 0 {
		return c < 0
	}
	switch t.kind {
	case KindEnum:
		return lessStrings(t.enumNames, u.enumNames)
	case KindVector, KindSet, KindAlias:
		return t.Elem().Less(u.Elem())
	case KindMap:
		if !t.Key().Equal(u.Key()) {
			return t.Key().Less(u.Key())
		}
		return t.Value().Less(u.Value())
	case KindRecord:
		n := len(t.fields)
		if len(u.fields) < n {
			n = len(u.fields)
		}
		for i := 0; i < n; i++ {
			if t.fields[i].Name != u.fields[i].Name {
				return t.fields[i].Name < u.fields[i].Name
			}
			if !t.fields[i].Type.Equal(u.fields[i].Type) {
				return t.fields[i].Type.Less(u.fields[i].Type)
			}
		}
		return len(t.fields) < len(u.fields)
	default:
		return false
	}
}

func lessStrings(a, b []string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func compareAttrs(a, b []Attribute) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Key != b[i].Key {
			if a[i].Key < b[i].Key {
				return -1
			}
			return 1
		}
		if a[i].Value != b[i].Value {
			if a[i].Value < b[i].Value {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// SortTypes sorts a slice of Type values in-place using Less, for canonical
// printed forms of otherwise unordered sets of types.
func SortTypes(ts []Type) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Less(ts[j]) })
}
