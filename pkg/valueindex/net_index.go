package valueindex

import (
	"net/netip"

	"github.com/gaissmai/bart"
	"github.com/vastcore/vast/pkg/data"
)

// AddressIndex maps an address value to its row ids.
type AddressIndex struct{ rows map[netip.Addr][]uint64 }

func NewAddressIndex() *AddressIndex { return &AddressIndex{rows: make(map[netip.Addr][]uint64)} }

func (idx *AddressIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Address()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *AddressIndex) RowsFor(val netip.Addr) []uint64 { return idx.rows[val] }

// SubnetIndex is a longest-prefix-match trie over subnet row-id buckets,
// grounded on github.com/gaissmai/bart.Table — the member-at-a-time append
// a VAST value index needs maps directly onto bart's Update: grow the
// bucket at pfx by one row id without replacing the whole entry. Exact
// matches go through Get (RowsFor); the most specific indexed subnet
// containing an address is a longest-prefix Lookup (RowsContaining). There
// is no query for all rows whose subnet lies under a given subnet.
type SubnetIndex struct {
	rows bart.Table[[]uint64]
}

func NewSubnetIndex() *SubnetIndex { return &SubnetIndex{} }

func (idx *SubnetIndex) FastAppend(v data.DataView, row uint64) error {
	pfx := v.Get().Subnet()
	idx.rows.Update(pfx, func(existing []uint64, _ bool) []uint64 {
		return append(existing, row)
	})
	return nil
}

// RowsFor returns the row ids stored under the exact subnet pfx.
func (idx *SubnetIndex) RowsFor(pfx netip.Prefix) []uint64 {
	rows, _ := idx.rows.Get(pfx)
	return rows
}

// RowsContaining returns the row ids of the most specific indexed subnet
// that contains addr, implementing the "address in subnet" predicate from
// spec.md's Compatible table via bart's longest-prefix-match Lookup.
func (idx *SubnetIndex) RowsContaining(addr netip.Addr) []uint64 {
	rows, _ := idx.rows.Lookup(addr)
	return rows
}

// PortIndex maps a (number, protocol) pair to its row ids.
type PortIndex struct{ rows map[data.Port][]uint64 }

func NewPortIndex() *PortIndex { return &PortIndex{rows: make(map[data.Port][]uint64)} }

func (idx *PortIndex) FastAppend(v data.DataView, row uint64) error {
	val := v.Get().Port()
	idx.rows[val] = append(idx.rows[val], row)
	return nil
}

func (idx *PortIndex) RowsFor(val data.Port) []uint64 { return idx.rows[val] }
