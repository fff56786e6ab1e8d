package valueindex

import "github.com/vastcore/vast/pkg/data"

// BoolIndex partitions row ids by their boolean value, grounded on
// hive/index/unique_index.go's two-bucket (present/absent) shape.
type BoolIndex struct {
	trueRows  []uint64
	falseRows []uint64
}

// NewBoolIndex returns an empty BoolIndex.
func NewBoolIndex() *BoolIndex { return &BoolIndex{} }

func (idx *BoolIndex) FastAppend(v data.DataView, row uint64) error {
	if v.Get().Bool() {
		idx.trueRows = append(idx.trueRows, row)
	} else {
		idx.falseRows = append(idx.falseRows, row)
	}
	return nil
}

// RowsFor returns the row ids that hold val.
func (idx *BoolIndex) RowsFor(val bool) []uint64 {
	if val {
		return idx.trueRows
	}
	return idx.falseRows
}
