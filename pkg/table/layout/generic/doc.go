// Package generic implements table's growable, builder-backed layout: rows
// accumulate as a plain slice of flattened field values and the slice they
// finalize into stores them as-is, one []data.Data per row. It is the
// layout every other layout can be built from and the one format readers
// outside this core actually emit rows against, grounded on
// hive/builder/builder.go's accumulate-then-finalize shape.
package generic
