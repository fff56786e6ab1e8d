// Package matrix implements table's two dense layouts: a row-major and a
// column-major fixed-shape array of cells, allocated alongside the slice's
// own header struct and released with it (DESIGN NOTES: "out-of-band
// allocation for matrix layouts"), ported index arithmetic from
// original_source/libvast/vast/matrix_table_slice.hpp's
// policy::row_major/policy::column_major. NewRowMajor/NewColumnMajor return
// an uninitialized slice the caller must fill before reading.
package matrix
