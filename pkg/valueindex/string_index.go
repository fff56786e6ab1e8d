package valueindex

import "github.com/vastcore/vast/pkg/data"

// StringIndex maps a string value to its row ids, grounded on
// hive/index/string_index.go's map[string]offset shape, generalized to a
// row-id bucket per distinct value instead of one offset per name.
type StringIndex struct{ rows map[string][]uint64 }

func NewStringIndex() *StringIndex { return &StringIndex{rows: make(map[string][]uint64)} }

func (idx *StringIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Str()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *StringIndex) RowsFor(val string) []uint64 { return idx.rows[val] }

// PatternIndex maps a regex source string to its row ids. Matching a
// pattern index against a probe string (rather than exact pattern-source
// equality) is outside pkg/table's contract; see spec.md's value-index
// glossary entry.
type PatternIndex struct{ rows map[string][]uint64 }

func NewPatternIndex() *PatternIndex { return &PatternIndex{rows: make(map[string][]uint64)} }

func (idx *PatternIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Pattern()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *PatternIndex) RowsFor(pattern string) []uint64 { return idx.rows[pattern] }
