package vtype

import "strings"

// Offset is a path of field indices into a (possibly nested) record, from
// outermost to innermost. An empty Offset denotes the record itself.
type Offset []int

func offsetEqual(a, b Offset) bool {
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

func cloneOffset(o Offset) Offset {
	return append(Offset(nil), o...)
}

// deref unwraps a chain of alias types down to the first non-alias type.
func (t Type) deref() Type {
	for t.kind == KindAlias {
		t = t.Elem()
	}
	return t
}

// resolveKey looks up a dotted path of field-name segments within a record,
// trying an exact match of the full remaining path against a single field
// name before descending segment by segment. This lets it resolve both
// ordinary nested keys ("b.c.y") and flattened keys whose field names are
// themselves dotted ("b.c.y" as one field).
func (t Type) resolveKey(segs []string) (Offset, bool) {
	rt := t.deref()
	if rt.kind != KindRecord || len(segs) == 0 {
		return nil, false
	}
	full := strings.Join(segs, ".")
	for i, f := range rt.fields {
		if f.Name == full {
			return Offset{i}, true
		}
	}
	head := segs[0]
	for i, f := range rt.fields {
		if f.Name != head {
			continue
		}
		if len(segs) == 1 {
			return Offset{i}, true
		}
		sub, ok := f.Type.resolveKey(segs[1:])
		if !ok {
			return nil, false
		}
		return append(Offset{i}, sub...), true
	}
	return nil, false
}

// Resolve maps a dotted key to the offset of the field it names. A key may
// optionally carry the record's own name as its leading segment.
func (t Type) Resolve(key string) (Offset, bool) {
	segs := strings.Split(key, ".")
	if off, ok := t.resolveKey(segs); ok {
		return off, true
	}
	if len(segs) > 1 && t.name != "" && segs[0] == t.name {
		return t.resolveKey(segs[1:])
	}
	return nil, false
}

// ResolveOffset is the inverse of Resolve: it renders an offset back into its
// dotted key, without re-adding the record's own name.
func (t Type) ResolveOffset(off Offset) (string, bool) {
	cur := t
	parts := make([]string, 0, len(off))
	for _, idx := range off {
		rt := cur.deref()
		if rt.kind != KindRecord || idx < 0 || idx >= len(rt.fields) {
			return "", false
		}
		parts = append(parts, rt.fields[idx].Name)
		cur = rt.fields[idx].Type
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "."), true
}

// At resolves a dotted key to the type of the field it names.
func (t Type) At(key string) (Type, bool) {
	off, ok := t.Resolve(key)
	if !ok {
		return Type{}, false
	}
	return t.AtOffset(off)
}

// AtOffset looks up the type at a field offset.
func (t Type) AtOffset(off Offset) (Type, bool) {
	cur := t
	for _, idx := range off {
		rt := cur.deref()
		if rt.kind != KindRecord || idx < 0 || idx >= len(rt.fields) {
			return Type{}, false
		}
		cur = rt.fields[idx].Type
	}
	return cur, true
}

// eachLeaf visits every non-record field reachable from t, depth-first,
// passing the dotted key, the offset, and the leaf's own type.
func eachLeaf(t Type, prefix []string, off Offset, fn func(key string, off Offset, leaf Type) bool) bool {
	rt := t.deref()
	if rt.kind == KindRecord {
		for i, f := range rt.fields {
			childPrefix := append(append([]string(nil), prefix...), f.Name)
			childOff := append(append(Offset(nil), off...), i)
			if !eachLeaf(f.Type, childPrefix, childOff, fn) {
				return false
			}
		}
		return true
	}
	return fn(strings.Join(prefix, "."), off, t)
}

// Each visits every leaf field of t (or, if t is not a record, t itself),
// calling fn with its dotted key, offset and type. Traversal stops early if
// fn returns false.
func (t Type) Each(fn func(key string, off Offset, leaf Type) bool) {
	eachLeaf(t, nil, nil, fn)
}

// eachNode visits every field at every nesting level of t (interior
// sub-records as well as leaves), used by FindSuffix. Each field's own name
// is dot-split before being appended to the path, so that both ordinary and
// already-flattened records are traversed uniformly.
func eachNode(t Type, prefix []string, off Offset, fn func(path []string, off Offset, node Type)) {
	rt := t.deref()
	if rt.kind != KindRecord {
		return
	}
	for i, f := range rt.fields {
		segs := strings.Split(f.Name, ".")
		path := append(append([]string(nil), prefix...), segs...)
		childOff := append(append(Offset(nil), off...), i)
		fn(path, childOff, f.Type)
		eachNode(f.Type, path, childOff, fn)
	}
}

// Flatten collapses all nested records into one record whose field names are
// the dotted leaf keys, preserving t's own name and attributes.
func Flatten(r Type) Type {
	var fields []Field
	eachLeaf(r, nil, nil, func(key string, _ Offset, leaf Type) bool {
		fields = append(fields, Field{Name: key, Type: leaf})
		return true
	})
	return Record(fields...).WithName(r.Name()).WithAttributes(r.Attributes())
}

// Unflatten is the inverse of Flatten: it regroups dotted field names back
// into nested records, preserving the outer record's own name and
// attributes.
func Unflatten(flat Type) Type {
	rt := flat.deref()
	if rt.kind != KindRecord {
		return flat
	}
	return unflattenFields(rt.fields).WithName(flat.Name()).WithAttributes(flat.Attributes())
}

func unflattenFields(fields []Field) Type {
	type group struct {
		leaf      *Field
		subFields []Field
	}
	order := make([]string, 0, len(fields))
	groups := make(map[string]*group, len(fields))

	for _, f := range fields {
		idx := strings.IndexByte(f.Name, '.')
		if idx < 0 {
			g, ok := groups[f.Name]
			if !ok {
				g = &group{}
				groups[f.Name] = g
				order = append(order, f.Name)
			}
			leaf := Field{Name: f.Name, Type: f.Type}
			g.leaf = &leaf
			continue
		}
		head, rest := f.Name[:idx], f.Name[idx+1:]
		g, ok := groups[head]
		if !ok {
			g = &group{}
			groups[head] = g
			order = append(order, head)
		}
		g.subFields = append(g.subFields, Field{Name: rest, Type: f.Type})
	}

	out := make([]Field, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.leaf != nil && len(g.subFields) == 0 {
			out = append(out, *g.leaf)
			continue
		}
		out = append(out, Field{Name: name, Type: unflattenFields(g.subFields)})
	}
	return Record(out...)
}

// FlatSize returns the number of leaf fields reachable from r.
func FlatSize(r Type) int {
	n := 0
	eachLeaf(r, nil, nil, func(string, Offset, Type) bool {
		n++
		return true
	})
	return n
}

// FlatIndexAt maps a (possibly nested) offset to its position in r's
// flattened form. It only succeeds for offsets that name a leaf.
func FlatIndexAt(r Type, off Offset) (int, bool) {
	idx, found := 0, false
	eachLeaf(r, nil, nil, func(_ string, leafOff Offset, _ Type) bool {
		if offsetEqual(leafOff, off) {
			found = true
			return false
		}
		idx++
		return true
	})
	if !found {
		return 0, false
	}
	return idx, true
}

// matchSuffix reports whether path's trailing len(pat) segments match pat,
// where "*" matches any single segment. The very first segment of path (the
// record's own name) is matched as a string suffix rather than exact
// equality, so a query may name only the trailing part of the record's name.
func matchSuffix(path, pat []string) bool {
	n, l := len(path), len(pat)
	if l > n {
		return false
	}
	start := n - l
	for i, p := range pat {
		if p == "*" {
			continue
		}
		pos := start + i
		if pos == 0 {
			if !strings.HasSuffix(path[pos], p) {
				return false
			}
			continue
		}
		if path[pos] != p {
			return false
		}
	}
	return true
}

// FindSuffix returns the offsets of every field (leaf or interior) whose
// dotted path, prefixed with t's own name, has pattern as a suffix. A "*"
// segment in pattern matches any single path segment.
func (t Type) FindSuffix(pattern string) []Offset {
	patSegs := strings.Split(pattern, ".")
	var out []Offset
	eachNode(t, []string{t.Name()}, nil, func(path []string, off Offset, _ Type) {
		if matchSuffix(path, patSegs) {
			out = append(out, cloneOffset(off))
		}
	})
	return out
}
