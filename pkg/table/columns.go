package table

import (
	"github.com/vastcore/vast/pkg/vasterr"
	"github.com/vastcore/vast/pkg/vtype"
)

// ColumnType returns the leaf field type at column col of layout's flattened
// form. Every layout's Columns() equals vtype.FlatSize(layout); col indexes
// into that same flattened order, so one helper serves all three layouts.
func ColumnType(layout vtype.Type, col uint64) (vtype.Type, error) {
	fields := vtype.Flatten(layout).Fields()
	if col >= uint64(len(fields)) {
		return vtype.Type{}, vasterr.New(vasterr.InconsistentSchema, "column index out of range")
	}
	return fields[col].Type, nil
}
