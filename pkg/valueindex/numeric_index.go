package valueindex

import (
	"time"

	"github.com/vastcore/vast/pkg/data"
)

// IntegerIndex maps a signed integer value to the row ids that hold it,
// grounded on hive/index/numeric_index.go's map-keyed-by-value shape
// (simplified: no hash-collision bucket, since Go map keys never collide).
type IntegerIndex struct{ rows map[int64][]uint64 }

func NewIntegerIndex() *IntegerIndex { return &IntegerIndex{rows: make(map[int64][]uint64)} }

func (idx *IntegerIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Integer()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *IntegerIndex) RowsFor(val int64) []uint64 { return idx.rows[val] }

// CountIndex maps an unsigned integer value to its row ids.
type CountIndex struct{ rows map[uint64][]uint64 }

func NewCountIndex() *CountIndex { return &CountIndex{rows: make(map[uint64][]uint64)} }

func (idx *CountIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Count()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *CountIndex) RowsFor(val uint64) []uint64 { return idx.rows[val] }

// RealIndex maps a float64 value to its row ids.
type RealIndex struct{ rows map[float64][]uint64 }

func NewRealIndex() *RealIndex { return &RealIndex{rows: make(map[float64][]uint64)} }

func (idx *RealIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Real()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *RealIndex) RowsFor(val float64) []uint64 { return idx.rows[val] }

// DurationIndex maps a time.Duration value to its row ids.
type DurationIndex struct{ rows map[time.Duration][]uint64 }

func NewDurationIndex() *DurationIndex { return &DurationIndex{rows: make(map[time.Duration][]uint64)} }

func (idx *DurationIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Duration()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *DurationIndex) RowsFor(val time.Duration) []uint64 { return idx.rows[val] }

// TimeIndex maps a time.Time value (compared by UnixNano) to its row ids.
type TimeIndex struct{ rows map[int64][]uint64 }

func NewTimeIndex() *TimeIndex { return &TimeIndex{rows: make(map[int64][]uint64)} }

func (idx *TimeIndex) FastAppend(v data.DataView, row uint64) error {
	key := v.Get().Time().UnixNano()
	idx.rows[key] = append(idx.rows[key], row)
	return nil
}

func (idx *TimeIndex) RowsFor(val time.Time) []uint64 { return idx.rows[val.UnixNano()] }
