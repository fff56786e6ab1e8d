package valueindex

import "github.com/vastcore/vast/pkg/data"

// VectorIndex and SetIndex route each element of a container cell into a
// shared element-kind index, rather than keying on the container as a
// whole — the per-element variant spec.md §4.5 calls out. The wrapped
// index is whatever pkg/table.NewIndexFor built for the declared element
// type.
type VectorIndex struct{ Elem Index }

func NewVectorIndex(elem Index) *VectorIndex { return &VectorIndex{Elem: elem} }

func (idx *VectorIndex) FastAppend(v data.DataView, row uint64) error {
	var err error
	v.Iterate(func(ev data.DataView) bool {
		if e := idx.Elem.FastAppend(ev, row); e != nil {
			err = e
			return false
		}
		return true
	})
	return err
}

// SetIndex is VectorIndex's set counterpart; sets already iterate in
// canonical sorted order.
type SetIndex struct{ Elem Index }

func NewSetIndex(elem Index) *SetIndex { return &SetIndex{Elem: elem} }

func (idx *SetIndex) FastAppend(v data.DataView, row uint64) error {
	var err error
	v.Iterate(func(ev data.DataView) bool {
		if e := idx.Elem.FastAppend(ev, row); e != nil {
			err = e
			return false
		}
		return true
	})
	return err
}

// MapIndex routes every key into a key index and every value into a value
// index, both row-id-tagged the same way.
type MapIndex struct {
	Key   Index
	Value Index
}

func NewMapIndex(key, value Index) *MapIndex { return &MapIndex{Key: key, Value: value} }

func (idx *MapIndex) FastAppend(v data.DataView, row uint64) error {
	var err error
	v.IterateMap(func(k, val data.DataView) bool {
		if e := idx.Key.FastAppend(k, row); e != nil {
			err = e
			return false
		}
		if e := idx.Value.FastAppend(val, row); e != nil {
			err = e
			return false
		}
		return true
	})
	return err
}
