package valueindex

import "github.com/vastcore/vast/pkg/data"

// EnumIndex buckets row ids by enumeration discriminant.
type EnumIndex struct{ rows map[int][]uint64 }

func NewEnumIndex() *EnumIndex { return &EnumIndex{rows: make(map[int][]uint64)} }

func (idx *EnumIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().EnumIndex()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *EnumIndex) RowsFor(discriminant int) []uint64 { return idx.rows[discriminant] }
