package table

import (
	"io"

	"github.com/vastcore/vast/pkg/data"
	"github.com/vastcore/vast/pkg/valueindex"
	"github.com/vastcore/vast/pkg/vtype"
)

// ImplID identifies which of the three C4 physical layouts produced a
// slice, at both the Go interface level and the wire framing in Serialize.
type ImplID uint32

const (
	ImplGeneric     ImplID = 1
	ImplRowMajor    ImplID = 2
	ImplColumnMajor ImplID = 3
)

func (id ImplID) String() string {
	switch id {
	case ImplGeneric:
		return "generic"
	case ImplRowMajor:
		return "row-major"
	case ImplColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Slice is the capability set every physical layout implements: a small,
// uniform surface — layout, shape, random access, serialization, deep copy,
// and schema-directed index feeding — over three otherwise-unrelated
// storage representations (see DESIGN NOTES: "shared immutable slices").
// A Slice is built once by its layout's builder and never mutated after;
// copy() yields an independent deep copy.
type Slice interface {
	Layout() vtype.Type
	Rows() uint64
	Columns() uint64
	Offset() uint64
	ImplementationID() ImplID

	// At returns a borrowed view over the cell at (row, col). row and col
	// are 0-based; col indexes into the layout's flattened field list.
	At(row, col uint64) (data.DataView, error)

	// Serialize writes the full wire frame of spec.md §6 to w, leading
	// with ImplementationID so Deserialize can dispatch.
	Serialize(w io.Writer) error

	// Copy returns a deep, independently-owned copy of the slice.
	Copy() Slice

	// AppendColumnToIndex feeds every cell of column col, paired with its
	// absolute row id (Offset()+row), into idx. The field type at col
	// selects the concrete index variant idx must be; a mismatch is an
	// InconsistentSchema error, never a panic.
	AppendColumnToIndex(col uint64, idx valueindex.Index) error

	// Close releases the slice: every layout decrements the live instance
	// counter on the first call, and the matrix layouts also drop their
	// element array. It is safe to call more than once; later calls do
	// nothing.
	Close() error
}
