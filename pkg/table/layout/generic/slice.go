package generic

import (
	"io"
	"sync"

	"github.com/vastcore/vast/pkg/data"
	"github.com/vastcore/vast/pkg/table"
	"github.com/vastcore/vast/pkg/valueindex"
	"github.com/vastcore/vast/pkg/vasterr"
	"github.com/vastcore/vast/pkg/vtype"
)

func init() {
	table.RegisterLayout(table.ImplGeneric, decodeBody)
}

// Slice is the generic layout's table.Slice: rows stored as a plain slice
// of flattened field values, produced by Builder.Finish and never mutated
// afterward.
type Slice struct {
	layout vtype.Type
	fields []vtype.Field
	rows   [][]data.Data
	offset uint64

	closeOnce sync.Once
}

func newSlice(layout vtype.Type, rows [][]data.Data, offset uint64) *Slice {
	s := &Slice{
		layout: layout,
		fields: vtype.Flatten(layout).Fields(),
		rows:   rows,
		offset: offset,
	}
	table.TrackInstance()
	return s
}

func (s *Slice) Layout() vtype.Type         { return s.layout }
func (s *Slice) Rows() uint64               { return uint64(len(s.rows)) }
func (s *Slice) Columns() uint64            { return uint64(len(s.fields)) }
func (s *Slice) Offset() uint64             { return s.offset }
func (s *Slice) ImplementationID() table.ImplID { return table.ImplGeneric }

func (s *Slice) At(row, col uint64) (data.DataView, error) {
	if row >= uint64(len(s.rows)) || col >= uint64(len(s.fields)) {
		return data.DataView{}, vasterr.New(vasterr.InconsistentSchema, "slice index out of range")
	}
	return data.MakeView(&s.rows[row][col]), nil
}

func (s *Slice) Copy() table.Slice {
	cp := make([][]data.Data, len(s.rows))
	for i, row := range s.rows {
		cp[i] = append([]data.Data(nil), row...)
	}
	return newSlice(s.layout, cp, s.offset)
}

func (s *Slice) AppendColumnToIndex(col uint64, idx valueindex.Index) error {
	colType, err := table.ColumnType(s.layout, col)
	if err != nil {
		return err
	}
	for r, row := range s.rows {
		if err := table.DispatchAppend(colType, idx, data.MakeView(&row[col]), s.offset+uint64(r)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Slice) Serialize(w io.Writer) error {
	hdr := table.Header{
		ImplID:  table.ImplGeneric,
		Layout:  s.layout,
		Rows:    s.Rows(),
		Columns: s.Columns(),
		Offset:  s.offset,
	}
	if err := table.WriteHeader(w, hdr); err != nil {
		return err
	}
	for _, row := range s.rows {
		for c, f := range s.fields {
			if err := data.Encode(w, f.Type, row[c]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Slice) Close() error {
	s.closeOnce.Do(table.UntrackInstance)
	return nil
}

func decodeBody(r io.Reader, hdr table.Header) (table.Slice, error) {
	fields := vtype.Flatten(hdr.Layout).Fields()
	rows := make([][]data.Data, 0, hdr.Rows)
	for i := uint64(0); i < hdr.Rows; i++ {
		row := make([]data.Data, len(fields))
		for c, f := range fields {
			v, err := data.Decode(r, f.Type)
			if err != nil {
				return nil, err
			}
			row[c] = v
		}
		rows = append(rows, row)
	}
	return newSlice(hdr.Layout, rows, hdr.Offset), nil
}
