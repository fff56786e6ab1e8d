package matrix

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
	table.RegisterLayout(table.ImplRowMajor, decodeRowMajor)
	table.RegisterLayout(table.ImplColumnMajor, decodeColumnMajor)
}

// Slice is the shared representation behind both dense layouts: a single
// elems array sized rows*cols, indexed either row-major (stride cols) or
// column-major (stride rows). The header struct and the element array are
// two Go allocations, made together in newMatrix; Close drops the struct's
// reference to the element array in one step and lets the garbage
// collector reclaim it, the simplified (no free-list) form documented in
// DESIGN.md.
type Slice struct {
	layout   vtype.Type
	fields   []vtype.Field
	rows     uint64
	cols     uint64
	offset   uint64
	colMajor bool
	elems    []data.Data

	closeOnce sync.Once
}

// NewRowMajor returns an uninitialized row-major slice of shape
// rows x columns(layout). The caller must fill every cell via Set before
// reading it with At.
func NewRowMajor(layout vtype.Type, rows uint64) *Slice {
	return newMatrix(layout, rows, false)
}

// NewColumnMajor returns an uninitialized column-major slice of shape
// rows x columns(layout).
func NewColumnMajor(layout vtype.Type, rows uint64) *Slice {
	return newMatrix(layout, rows, true)
}

func newMatrix(layout vtype.Type, rows uint64, colMajor bool) *Slice {
	fields := vtype.Flatten(layout).Fields()
	cols := uint64(len(fields))
	s := &Slice{
		layout:   layout,
		fields:   fields,
		rows:     rows,
		cols:     cols,
		colMajor: colMajor,
		elems:    make([]data.Data, rows*cols),
	}
	table.TrackInstance()
	return s
}

// index maps a (row, col) pair to its position in elems, per
// matrix_table_slice.hpp's index_of: r*cols+c for row-major,
// c*rows+r for column-major.
func (s *Slice) index(row, col uint64) uint64 {
	if s.colMajor {
		return col*s.rows + row
	}
	return row*s.cols + col
}

// Set fills the cell at (row, col); callers use this to populate a freshly
// constructed, uninitialized matrix slice before sharing it.
func (s *Slice) Set(row, col uint64, v data.Data) error {
	if row >= s.rows || col >= s.cols {
		return vasterr.New(vasterr.InconsistentSchema, "slice index out of range")
	}
	s.elems[s.index(row, col)] = v
	return nil
}

// WithOffset sets the slice's logical starting row id and returns s.
func (s *Slice) WithOffset(offset uint64) *Slice {
	s.offset = offset
	return s
}

func (s *Slice) Layout() vtype.Type { return s.layout }
func (s *Slice) Rows() uint64       { return s.rows }
func (s *Slice) Columns() uint64    { return s.cols }
func (s *Slice) Offset() uint64     { return s.offset }

func (s *Slice) ImplementationID() table.ImplID {
	if s.colMajor {
		return table.ImplColumnMajor
	}
	return table.ImplRowMajor
}

func (s *Slice) At(row, col uint64) (data.DataView, error) {
	if row >= s.rows || col >= s.cols {
		return data.DataView{}, vasterr.New(vasterr.InconsistentSchema, "slice index out of range")
	}
	return data.MakeView(&s.elems[s.index(row, col)]), nil
}

func (s *Slice) Copy() table.Slice {
	cp := newMatrix(s.layout, s.rows, s.colMajor)
	cp.offset = s.offset
	copy(cp.elems, s.elems)
	return cp
}

func (s *Slice) AppendColumnToIndex(col uint64, idx valueindex.Index) error {
	if col >= s.cols {
		return vasterr.New(vasterr.InconsistentSchema, "column index out of range")
	}
	colType := s.fields[col].Type
	for r := uint64(0); r < s.rows; r++ {
		v := &s.elems[s.index(r, col)]
		if err := table.DispatchAppend(colType, idx, data.MakeView(v), s.offset+r); err != nil {
			return err
		}
	}
	return nil
}

// Serialize writes the header followed by every cell in the layout's
// natural traversal order: row-major writes row by row, column-major writes
// column by column, per spec.md §6.
func (s *Slice) Serialize(w io.Writer) error {
	implID := table.ImplRowMajor
	if s.colMajor {
		implID = table.ImplColumnMajor
	}
	hdr := table.Header{ImplID: implID, Layout: s.layout, Rows: s.rows, Columns: s.cols, Offset: s.offset}
	if err := table.WriteHeader(w, hdr); err != nil {
		return err
	}
	if s.colMajor {
		for c := uint64(0); c < s.cols; c++ {
			for r := uint64(0); r < s.rows; r++ {
				if err := data.Encode(w, s.fields[c].Type, s.elems[s.index(r, c)]); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for r := uint64(0); r < s.rows; r++ {
		for c := uint64(0); c < s.cols; c++ {
			if err := data.Encode(w, s.fields[c].Type, s.elems[s.index(r, c)]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Slice) Close() error {
	s.closeOnce.Do(func() {
		s.elems = nil
		table.UntrackInstance()
	})
	return nil
}

func decodeRowMajor(r io.Reader, hdr table.Header) (table.Slice, error) {
	return decodeMatrix(r, hdr, false)
}

func decodeColumnMajor(r io.Reader, hdr table.Header) (table.Slice, error) {
	return decodeMatrix(r, hdr, true)
}

func decodeMatrix(r io.Reader, hdr table.Header, colMajor bool) (table.Slice, error) {
	s := newMatrix(hdr.Layout, hdr.Rows, colMajor)
	s.offset = hdr.Offset
	if colMajor {
		for c := uint64(0); c < s.cols; c++ {
			for row := uint64(0); row < s.rows; row++ {
				v, err := data.Decode(r, s.fields[c].Type)
				if err != nil {
					return nil, err
				}
				s.elems[s.index(row, c)] = v
			}
		}
		return s, nil
	}
	for row := uint64(0); row < s.rows; row++ {
		for c := uint64(0); c < s.cols; c++ {
			v, err := data.Decode(r, s.fields[c].Type)
			if err != nil {
				return nil, err
			}
			s.elems[s.index(row, c)] = v
		}
	}
	return s, nil
}
