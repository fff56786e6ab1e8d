package generic

import (
	"github.com/vastcore/vast/pkg/data"
	"github.com/vastcore/vast/pkg/table"
	"github.com/vastcore/vast/pkg/vasterr"
	"github.com/vastcore/vast/pkg/vtype"
)

// Builder accumulates rows for the generic layout, grounded on
// hive/builder/builder.go's accumulate-then-finalize shape: repeated
// Append calls grow an in-memory buffer, and Finish hands ownership of that
// buffer to a newly constructed, immutable Slice.
type Builder struct {
	layout vtype.Type
	fields []vtype.Field
	rows   [][]data.Data
	offset uint64
}

// NewBuilder returns an empty Builder for layout. layout need not already
// be flat; rows are appended in layout's flattened field order.
func NewBuilder(layout vtype.Type) *Builder {
	return &Builder{layout: layout, fields: vtype.Flatten(layout).Fields()}
}

// WithOffset sets the logical row id of the first appended row and returns
// b, for chaining at construction time.
func (b *Builder) WithOffset(offset uint64) *Builder {
	b.offset = offset
	return b
}

// Append adds one row, given as flattened leaf values in layout's flattened
// field order. It type-checks every cell against its declared field type
// before accepting the row, so a malformed row never reaches a built Slice.
func (b *Builder) Append(row []data.Data) error {
	if len(row) != len(b.fields) {
		return vasterr.New(vasterr.InconsistentSchema, "row arity does not match layout's flattened field count")
	}
	for i, f := range row {
		if !data.TypeCheck(b.fields[i].Type, f) {
			return vasterr.New(vasterr.InconsistentSchema, "row value does not match declared type for field "+b.fields[i].Name)
		}
	}
	b.rows = append(b.rows, append([]data.Data(nil), row...))
	return nil
}

// Rows returns the number of rows accumulated so far.
func (b *Builder) Rows() int { return len(b.rows) }

// Finish builds an immutable Slice from the accumulated rows. The builder
// must not be reused afterward; its row buffer is handed to the new Slice.
func (b *Builder) Finish() table.Slice {
	return newSlice(b.layout, b.rows, b.offset)
}
