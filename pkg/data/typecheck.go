package data

import "github.com/vastcore/vast/pkg/vtype"

// kindOf maps a vtype.Kind to the matching data kindTag, or ok=false if the
// vtype kind has no data counterpart to check against directly (alias,
// which type_check sees through to its wrapped kind).
func kindOf(k vtype.Kind) (kindTag, bool) {
	switch k {
	case vtype.KindNone:
		return kindNone, true
	case vtype.KindBool:
		return kindBool, true
	case vtype.KindInteger:
		return kindInteger, true
	case vtype.KindCount:
		return kindCount, true
	case vtype.KindReal:
		return kindReal, true
	case vtype.KindDuration:
		return kindDuration, true
	case vtype.KindTime:
		return kindTime, true
	case vtype.KindString:
		return kindString, true
	case vtype.KindPattern:
		return kindPattern, true
	case vtype.KindAddress:
		return kindAddress, true
	case vtype.KindSubnet:
		return kindSubnet, true
	case vtype.KindPort:
		return kindPort, true
	case vtype.KindEnum:
		return kindEnum, true
	case vtype.KindVector:
		return kindVector, true
	case vtype.KindSet:
		return kindSet, true
	case vtype.KindMap:
		return kindMap, true
	case vtype.KindRecord:
		return kindRecord, true
	default:
		return kindNone, false
	}
}

// TypeCheck reports whether v is a legal instance of t: v is none; or t is a
// container with no element type pinned down (the zero vtype.Type, used as
// an "any element" wildcard) and v is any container of the matching kind;
// or the variant tags match and, recursively, every element/field checks
// against its declared type.
func TypeCheck(t vtype.Type, v Data) bool {
	if v.IsNone() {
		return true
	}
	rt := derefAlias(t)
	want, ok := kindOf(rt.Kind())
	if !ok {
		return false
	}
	if want != v.kind {
		return false
	}
	switch rt.Kind() {
	case vtype.KindVector:
		if !rt.Elem().Valid() {
			return true
		}
		for _, e := range v.vec {
			if !TypeCheck(rt.Elem(), e) {
				return false
			}
		}
		return true
	case vtype.KindSet:
		if !rt.Elem().Valid() {
			return true
		}
		for _, e := range v.set {
			if !TypeCheck(rt.Elem(), e) {
				return false
			}
		}
		return true
	case vtype.KindMap:
		if !rt.Key().Valid() || !rt.Value().Valid() {
			return true
		}
		for _, e := range v.mp {
			if !TypeCheck(rt.Key(), e.Key) || !TypeCheck(rt.Value(), e.Value) {
				return false
			}
		}
		return true
	case vtype.KindEnum:
		return v.enum >= 0 && v.enum < len(rt.EnumNames())
	case vtype.KindRecord:
		if len(rt.Fields()) != len(v.rec) {
			return false
		}
		for i, f := range rt.Fields() {
			if !TypeCheck(f.Type, v.rec[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func derefAlias(t vtype.Type) vtype.Type {
	for t.Kind() == vtype.KindAlias {
		t = t.Elem()
	}
	return t
}
