package table_test

import (
	"bytes"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastcore/vast/pkg/data"
	"github.com/vastcore/vast/pkg/table"
	"github.com/vastcore/vast/pkg/table/layout/generic"
	"github.com/vastcore/vast/pkg/table/layout/matrix"
	"github.com/vastcore/vast/pkg/valueindex"
	"github.com/vastcore/vast/pkg/vtype"
)

func testLayout() vtype.Type {
	return vtype.Record(
		vtype.Field{Name: "id", Type: vtype.Integer()},
		vtype.Field{Name: "name", Type: vtype.Str()},
		vtype.Field{Name: "ip", Type: vtype.Address()},
	).WithName("event")
}

func testRows() [][]data.Data {
	return [][]data.Data{
		{data.Integer(1), data.Str("a"), data.Address(netip.MustParseAddr("10.0.0.1"))},
		{data.Integer(2), data.Str("b"), data.Address(netip.MustParseAddr("10.0.0.2"))},
		{data.Integer(3), data.Str("c"), data.Address(netip.MustParseAddr("10.0.0.3"))},
	}
}

// buildSlices returns one slice per C4 layout, all holding the same data,
// so every shared-contract test below runs against all three.
func buildSlices(t *testing.T) map[string]table.Slice {
	t.Helper()
	layout := testLayout()
	rows := testRows()

	b := generic.NewBuilder(layout)
	for _, r := range rows {
		require.NoError(t, b.Append(r))
	}
	genSlice := b.Finish()

	rm := matrix.NewRowMajor(layout, uint64(len(rows)))
	cm := matrix.NewColumnMajor(layout, uint64(len(rows)))
	for r, row := range rows {
		for c, v := range row {
			require.NoError(t, rm.Set(uint64(r), uint64(c), v))
			require.NoError(t, cm.Set(uint64(r), uint64(c), v))
		}
	}

	return map[string]table.Slice{
		"generic":      genSlice,
		"row-major":    rm,
		"column-major": cm,
	}
}

func TestSliceShapeAndAt(t *testing.T) {
	rows := testRows()
	for name, s := range buildSlices(t) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, uint64(len(rows)), s.Rows())
			assert.Equal(t, uint64(3), s.Columns())
			assert.Equal(t, uint64(0), s.Offset())
			for r := range rows {
				for c := range rows[r] {
					v, err := s.At(uint64(r), uint64(c))
					require.NoError(t, err)
					assert.True(t, rows[r][c].Equal(v.Get()), "row %d col %d", r, c)
				}
			}
		})
	}
}

func TestSliceAtOutOfRange(t *testing.T) {
	for name, s := range buildSlices(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.At(100, 0)
			require.Error(t, err)
			_, err = s.At(0, 100)
			require.Error(t, err)
		})
	}
}

func TestSliceImplementationIDs(t *testing.T) {
	slices := buildSlices(t)
	assert.Equal(t, table.ImplGeneric, slices["generic"].ImplementationID())
	assert.Equal(t, table.ImplRowMajor, slices["row-major"].ImplementationID())
	assert.Equal(t, table.ImplColumnMajor, slices["column-major"].ImplementationID())
}

func TestSliceSerializeDeserializeRoundTrip(t *testing.T) {
	for name, s := range buildSlices(t) {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, s.Serialize(&buf))

			got, err := table.Deserialize(&buf)
			require.NoError(t, err)

			assert.Equal(t, s.ImplementationID(), got.ImplementationID())
			assert.Equal(t, s.Offset(), got.Offset())
			assert.Equal(t, s.Rows(), got.Rows())
			assert.Equal(t, s.Columns(), got.Columns())
			assert.True(t, s.Layout().Equal(got.Layout()))

			for r := uint64(0); r < s.Rows(); r++ {
				for c := uint64(0); c < s.Columns(); c++ {
					want, err := s.At(r, c)
					require.NoError(t, err)
					have, err := got.At(r, c)
					require.NoError(t, err)
					assert.True(t, want.Get().Equal(have.Get()), "row %d col %d", r, c)
				}
			}
		})
	}
}

func TestSliceCopyIsIndependent(t *testing.T) {
	layout := testLayout()
	rows := testRows()
	b := generic.NewBuilder(layout)
	for _, r := range rows {
		require.NoError(t, b.Append(r))
	}
	orig := b.Finish()
	clone := orig.Copy()

	assert.True(t, orig.Layout().Equal(clone.Layout()))
	assert.Equal(t, orig.Rows(), clone.Rows())

	// rebuild orig from scratch to simulate "mutating the source": the
	// clone must be unaffected since it owns its own storage.
	b2 := generic.NewBuilder(layout)
	require.NoError(t, b2.Append([]data.Data{data.Integer(99), data.Str("z"), data.Address(netip.MustParseAddr("1.1.1.1"))}))
	rebuilt := b2.Finish()

	v, err := clone.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Get().Integer(), "clone unaffected by rebuilding orig")

	v, err = rebuilt.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(99), v.Get().Integer())
}

func TestInstancesReturnsToBaselineAfterClose(t *testing.T) {
	baseline := table.Instances()

	slices := buildSlices(t)
	assert.Greater(t, table.Instances(), baseline)

	for _, s := range slices {
		require.NoError(t, s.Close())
	}
	assert.Equal(t, baseline, table.Instances())
}

func TestCloseIsIdempotent(t *testing.T) {
	for name, s := range buildSlices(t) {
		t.Run(name, func(t *testing.T) {
			before := table.Instances()
			require.NoError(t, s.Close())
			require.NoError(t, s.Close())
			assert.Equal(t, before-1, table.Instances())
		})
	}
}

func TestAppendColumnToIndexDispatchesByType(t *testing.T) {
	for name, s := range buildSlices(t) {
		t.Run(name, func(t *testing.T) {
			ints := valueindex.NewIntegerIndex()
			require.NoError(t, s.AppendColumnToIndex(0, ints))
			assert.Equal(t, []uint64{0}, ints.RowsFor(1))
			assert.Equal(t, []uint64{1}, ints.RowsFor(2))
			assert.Equal(t, []uint64{2}, ints.RowsFor(3))
		})
	}
}

func TestAppendColumnToIndexRejectsTypeMismatch(t *testing.T) {
	for name, s := range buildSlices(t) {
		t.Run(name, func(t *testing.T) {
			wrong := valueindex.NewStringIndex()
			err := s.AppendColumnToIndex(0, wrong) // column 0 is integer
			require.Error(t, err)
		})
	}
}

func TestAppendColumnToIndexHonorsOffset(t *testing.T) {
	layout := testLayout()
	rows := testRows()
	b := generic.NewBuilder(layout).WithOffset(100)
	for _, r := range rows {
		require.NoError(t, b.Append(r))
	}
	s := b.Finish()
	assert.Equal(t, uint64(100), s.Offset())

	ints := valueindex.NewIntegerIndex()
	require.NoError(t, s.AppendColumnToIndex(0, ints))
	assert.Equal(t, []uint64{100}, ints.RowsFor(1))
	assert.Equal(t, []uint64{102}, ints.RowsFor(3))
}

func TestColumnType(t *testing.T) {
	layout := testLayout()
	ct, err := table.ColumnType(layout, 1)
	require.NoError(t, err)
	assert.Equal(t, vtype.KindString, ct.Kind())

	_, err = table.ColumnType(layout, 99)
	require.Error(t, err)
}

func TestMatrixRowAndColumnIndexFormulas(t *testing.T) {
	layout := testLayout()
	rows := testRows()

	rm := matrix.NewRowMajor(layout, uint64(len(rows)))
	for r, row := range rows {
		for c, v := range row {
			require.NoError(t, rm.Set(uint64(r), uint64(c), v))
		}
	}
	v, err := rm.At(1, 2)
	require.NoError(t, err)
	assert.True(t, v.Get().Equal(data.Address(netip.MustParseAddr("10.0.0.2"))))

	cm := matrix.NewColumnMajor(layout, uint64(len(rows)))
	for r, row := range rows {
		for c, v := range row {
			require.NoError(t, cm.Set(uint64(r), uint64(c), v))
		}
	}
	v, err = cm.At(1, 2)
	require.NoError(t, err)
	assert.True(t, v.Get().Equal(data.Address(netip.MustParseAddr("10.0.0.2"))))
}

func TestMatrixSetOutOfRange(t *testing.T) {
	layout := testLayout()
	rm := matrix.NewRowMajor(layout, 2)
	err := rm.Set(5, 0, data.Integer(1))
	require.Error(t, err)
}

func TestBuilderRejectsWrongArityOrType(t *testing.T) {
	layout := testLayout()
	b := generic.NewBuilder(layout)

	err := b.Append([]data.Data{data.Integer(1), data.Str("x")}) // missing a field
	require.Error(t, err)

	err = b.Append([]data.Data{data.Integer(1), data.Integer(2), data.Address(netip.MustParseAddr("1.1.1.1"))})
	require.Error(t, err, "second field declared as string, not integer")

	assert.Equal(t, 0, b.Rows())
}
