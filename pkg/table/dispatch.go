package table

import (
	"github.com/vastcore/vast/pkg/data"
	"github.com/vastcore/vast/pkg/valueindex"
	"github.com/vastcore/vast/pkg/vasterr"
	"github.com/vastcore/vast/pkg/vtype"
)

// DispatchAppend is the "visitor dispatch on types" design note: a double
// switch on a field's vtype.Kind and idx's concrete Go type, statically
// pairing each vtype variant with the one valueindex variant that may
// receive its cells. Any other pairing is a hard InconsistentSchema error,
// never a silent drop or a panic — grounded on hive/index's per-kind index
// family (numeric_index.go, string_index.go, unique_index.go) plus the
// upstream detail::value_index_inspect_helper cross-check.
func DispatchAppend(t vtype.Type, idx valueindex.Index, v data.DataView, row uint64) error {
	rt := t
	for rt.Kind() == vtype.KindAlias {
		rt = rt.Elem()
	}
	switch rt.Kind() {
	case vtype.KindBool:
		i, ok := idx.(*valueindex.BoolIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindInteger:
		i, ok := idx.(*valueindex.IntegerIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindCount:
		i, ok := idx.(*valueindex.CountIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindReal:
		i, ok := idx.(*valueindex.RealIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindDuration:
		i, ok := idx.(*valueindex.DurationIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindTime:
		i, ok := idx.(*valueindex.TimeIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindString:
		i, ok := idx.(*valueindex.StringIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindPattern:
		i, ok := idx.(*valueindex.PatternIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindAddress:
		i, ok := idx.(*valueindex.AddressIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindSubnet:
		i, ok := idx.(*valueindex.SubnetIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindPort:
		i, ok := idx.(*valueindex.PortIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindEnum:
		i, ok := idx.(*valueindex.EnumIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindVector:
		i, ok := idx.(*valueindex.VectorIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindSet:
		i, ok := idx.(*valueindex.SetIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	case vtype.KindMap:
		i, ok := idx.(*valueindex.MapIndex)
		if !ok {
			return mismatch(rt, idx)
		}
		return i.FastAppend(v, row)
	default:
		return vasterr.New(vasterr.InconsistentSchema, "no value index variant for type kind "+rt.Kind().String())
	}
}

func mismatch(t vtype.Type, idx valueindex.Index) error {
	return vasterr.New(vasterr.InconsistentSchema,
		"value index type does not match field type "+t.Kind().String())
}

// NewIndexFor constructs the value index variant appropriate for t,
// recursing into container element/key/value types. It is the factory half
// of DispatchAppend's routing table, used by callers (e.g. the index
// component, out of scope here) that need one index per declared field.
func NewIndexFor(t vtype.Type) (valueindex.Index, error) {
	rt := t
	for rt.Kind() == vtype.KindAlias {
		rt = rt.Elem()
	}
	switch rt.Kind() {
	case vtype.KindBool:
		return valueindex.NewBoolIndex(), nil
	case vtype.KindInteger:
		return valueindex.NewIntegerIndex(), nil
	case vtype.KindCount:
		return valueindex.NewCountIndex(), nil
	case vtype.KindReal:
		return valueindex.NewRealIndex(), nil
	case vtype.KindDuration:
		return valueindex.NewDurationIndex(), nil
	case vtype.KindTime:
		return valueindex.NewTimeIndex(), nil
	case vtype.KindString:
		return valueindex.NewStringIndex(), nil
	case vtype.KindPattern:
		return valueindex.NewPatternIndex(), nil
	case vtype.KindAddress:
		return valueindex.NewAddressIndex(), nil
	case vtype.KindSubnet:
		return valueindex.NewSubnetIndex(), nil
	case vtype.KindPort:
		return valueindex.NewPortIndex(), nil
	case vtype.KindEnum:
		return valueindex.NewEnumIndex(), nil
	case vtype.KindVector:
		elem, err := NewIndexFor(rt.Elem())
		if err != nil {
			return nil, err
		}
		return valueindex.NewVectorIndex(elem), nil
	case vtype.KindSet:
		elem, err := NewIndexFor(rt.Elem())
		if err != nil {
			return nil, err
		}
		return valueindex.NewSetIndex(elem), nil
	case vtype.KindMap:
		k, err := NewIndexFor(rt.Key())
		if err != nil {
			return nil, err
		}
		val, err := NewIndexFor(rt.Value())
		if err != nil {
			return nil, err
		}
		return valueindex.NewMapIndex(k, val), nil
	default:
		return nil, vasterr.New(vasterr.InconsistentSchema, "no value index variant for type kind "+rt.Kind().String())
	}
}
