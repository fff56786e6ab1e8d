package data

// DataView is a non-owning, read-only reference to a Data (or one of its
// sub-elements), bound to the lifetime of the Data it was made from. It
// exists so a table slice can feed cell contents into a value index without
// copying the underlying payload for every row.
type DataView struct {
	d *Data
}

// MakeView lifts an owned Data into a view bound to d's lifetime. Since d is
// a plain value, the view simply borrows its address; callers must not let
// the view outlive the variable backing it if that variable is later
// reassigned.
func MakeView(d *Data) DataView { return DataView{d: d} }

// Get returns the viewed Data by value.
func (v DataView) Get() Data { return *v.d }

func (v DataView) IsNone() bool { return v.d.IsNone() }

// Iterate visits every element of a vector, set or record in stored order
// (sets are stored in canonical sorted order), calling fn with a view over
// each. Traversal stops early if fn returns false. Iterate is a no-op for
// non-container kinds.
func (v DataView) Iterate(fn func(DataView) bool) {
	var elems []Data
	switch v.d.kind {
	case kindVector:
		elems = v.d.vec
	case kindSet:
		elems = v.d.set
	case kindRecord:
		elems = v.d.rec
	default:
		return
	}
	for i := range elems {
		if !fn(MakeView(&elems[i])) {
			return
		}
	}
}

// IterateMap visits every (key, value) pair of a map in key-sorted order.
// It is a no-op for non-map kinds.
func (v DataView) IterateMap(fn func(key, value DataView) bool) {
	if v.d.kind != kindMap {
		return
	}
	for i := range v.d.mp {
		if !fn(MakeView(&v.d.mp[i].Key), MakeView(&v.d.mp[i].Value)) {
			return
		}
	}
}
