// Package table implements the table slice abstraction: an immutable,
// reference-counted, serializable batched row container sharing one record
// layout, with a uniform interface across three physical representations
// (see layout/generic and layout/matrix) and process-wide instance
// accounting.
package table
