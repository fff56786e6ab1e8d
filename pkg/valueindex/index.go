package valueindex

import "github.com/vastcore/vast/pkg/data"

// Index is the single capability pkg/table's slice layer depends on: feed a
// cell's view, paired with its absolute row id, into the index. Concrete
// variants add their own read-only lookup surface on top (see each file in
// this package), grounded on hive/index.Index's split between a mutable
// append interface and a read-only query interface — here the append half
// is the common Index contract, and the query half is variant-specific
// because a bool lookup and a subnet longest-prefix lookup have nothing in
// common to embed.
type Index interface {
	FastAppend(v data.DataView, row uint64) error
}
