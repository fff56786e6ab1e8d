package data

import (
	"net/netip"
	"sort"
	"time"
)

// Port pairs a 16-bit port number with a protocol tag ("tcp", "udp",
// "icmp", or "" for unknown), matching vtype.Port's wire shape.
type Port struct {
	Number   uint16
	Protocol string
}

// MapEntry is one (key, value) pair of a Map, in canonical key order.
type MapEntry struct {
	Key   Data
	Value Data
}

// Data is a closed variant type isomorphic to vtype.Kind. The zero Data is
// None(); copy by value.
type Data struct {
	kind kindTag

	b      bool
	i      int64
	u      uint64
	f      float64
	dur    time.Duration
	t      time.Time
	s      string // string and pattern payload
	addr   netip.Addr
	subnet netip.Prefix
	port   Port
	enum   int

	vec []Data
	set []Data
	mp  []MapEntry
	rec []Data
}

// kindTag mirrors vtype.Kind without importing it, keeping pkg/data free of
// a pkg/vtype dependency at the variant-tag level; TypeCheck bridges the two
// algebras explicitly.
type kindTag int

const (
	kindNone kindTag = iota
	kindBool
	kindInteger
	kindCount
	kindReal
	kindDuration
	kindTime
	kindString
	kindPattern
	kindAddress
	kindSubnet
	kindPort
	kindEnum
	kindVector
	kindSet
	kindMap
	kindRecord
)

// --- constructors ---

func None() Data { return Data{kind: kindNone} }

func Bool(v bool) Data { return Data{kind: kindBool, b: v} }

func Integer(v int64) Data { return Data{kind: kindInteger, i: v} }

func Count(v uint64) Data { return Data{kind: kindCount, u: v} }

func Real(v float64) Data { return Data{kind: kindReal, f: v} }

func Dur(v time.Duration) Data { return Data{kind: kindDuration, dur: v} }

func Time(v time.Time) Data { return Data{kind: kindTime, t: v} }

func Str(v string) Data { return Data{kind: kindString, s: v} }

func Pattern(v string) Data { return Data{kind: kindPattern, s: v} }

func Address(v netip.Addr) Data { return Data{kind: kindAddress, addr: v} }

func Subnet(v netip.Prefix) Data { return Data{kind: kindSubnet, subnet: v} }

func PortVal(number uint16, protocol string) Data {
	return Data{kind: kindPort, port: Port{Number: number, Protocol: protocol}}
}

// Enum constructs an enumeration value from its discriminant index.
func Enum(idx int) Data { return Data{kind: kindEnum, enum: idx} }

// Vector constructs a vector value, preserving insertion order.
func Vector(elems ...Data) Data {
	cp := append([]Data(nil), elems...)
	return Data{kind: kindVector, vec: cp}
}

// Set constructs a set value, canonicalized: sorted and deduplicated.
func Set(elems ...Data) Data {
	cp := append([]Data(nil), elems...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	out := cp[:0]
	for i, d := range cp {
		if i == 0 || !out[len(out)-1].Equal(d) {
			out = append(out, d)
		}
	}
	return Data{kind: kindSet, set: out}
}

// Map constructs a map value, canonicalized: sorted by key, last write wins
// on duplicate keys.
func Map(entries ...MapEntry) Data {
	cp := append([]MapEntry(nil), entries...)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Key.Less(cp[j].Key) })
	out := cp[:0]
	for _, e := range cp {
		if n := len(out); n > 0 && out[n-1].Key.Equal(e.Key) {
			out[n-1] = e
			continue
		}
		out = append(out, e)
	}
	return Data{kind: kindMap, mp: out}
}

// Record constructs a record value from positional field data.
func Record(fields ...Data) Data {
	cp := append([]Data(nil), fields...)
	return Data{kind: kindRecord, rec: cp}
}

// --- accessors ---

func (d Data) IsNone() bool { return d.kind == kindNone }

func (d Data) Bool() bool             { return d.b }
func (d Data) Integer() int64         { return d.i }
func (d Data) Count() uint64          { return d.u }
func (d Data) Real() float64          { return d.f }
func (d Data) Duration() time.Duration { return d.dur }
func (d Data) Time() time.Time        { return d.t }
func (d Data) Str() string            { return d.s }
func (d Data) Pattern() string        { return d.s }
func (d Data) Address() netip.Addr    { return d.addr }
func (d Data) Subnet() netip.Prefix   { return d.subnet }
func (d Data) Port() Port             { return d.port }
func (d Data) EnumIndex() int         { return d.enum }
func (d Data) Vector() []Data         { return d.vec }
func (d Data) Set() []Data            { return d.set }
func (d Data) Map() []MapEntry        { return d.mp }
func (d Data) Record() []Data         { return d.rec }

// --- equality and ordering ---

// Equal reports deep structural equality.
func (d Data) Equal(o Data) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case kindNone:
		return true
	case kindBool:
		return d.b == o.b
	case kindInteger:
		return d.i == o.i
	case kindCount:
		return d.u == o.u
	case kindReal:
		return d.f == o.f
	case kindDuration:
		return d.dur == o.dur
	case kindTime:
		return d.t.Equal(o.t)
	case kindString, kindPattern:
		return d.s == o.s
	case kindAddress:
		return d.addr == o.addr
	case kindSubnet:
		return d.subnet == o.subnet
	case kindPort:
		return d.port == o.port
	case kindEnum:
		return d.enum == o.enum
	case kindVector:
		return equalSlice(d.vec, o.vec)
	case kindSet:
		return equalSlice(d.set, o.set)
	case kindRecord:
		return equalSlice(d.rec, o.rec)
	case kindMap:
		if len(d.mp) != len(o.mp) {
			return false
		}
		for i := range d.mp {
			if !d.mp[i].Key.Equal(o.mp[i].Key) || !d.mp[i].Value.Equal(o.mp[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalSlice(a, b []Data) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Less defines a deterministic total order over Data values, used to
// canonicalize Set and Map. Ordering across kinds is by kind tag; within a
// kind it follows the natural order of the payload.
func (d Data) Less(o Data) bool {
	if d.kind != o.kind {
		return d.kind < o.kind
	}
	switch d.kind {
	case kindBool:
		return !d.b && o.b
	case kindInteger:
		return d.i < o.i
	case kindCount:
		return d.u < o.u
	case kindReal:
		return d.f < o.f
	case kindDuration:
		return d.dur < o.dur
	case kindTime:
		return d.t.Before(o.t)
	case kindString, kindPattern:
		return d.s < o.s
	case kindAddress:
		return d.addr.Less(o.addr)
	case kindSubnet:
		if d.subnet.Addr() != o.subnet.Addr() {
			return d.subnet.Addr().Less(o.subnet.Addr())
		}
		return d.subnet.Bits() < o.subnet.Bits()
	case kindPort:
		if d.port.Number != o.port.Number {
			return d.port.Number < o.port.Number
		}
		return d.port.Protocol < o.port.Protocol
	case kindEnum:
		return d.enum < o.enum
	case kindVector:
		return lessSlice(d.vec, o.vec)
	case kindSet:
		return lessSlice(d.set, o.set)
	case kindRecord:
		return lessSlice(d.rec, o.rec)
	case kindMap:
		n := len(d.mp)
		if len(o.mp) < n {
			n = len(o.mp)
		}
		for i := 0; i < n; i++ {
			if !d.mp[i].Key.Equal(o.mp[i].Key) {
				return d.mp[i].Key.Less(o.mp[i].Key)
			}
			if !d.mp[i].Value.Equal(o.mp[i].Value) {
				return d.mp[i].Value.Less(o.mp[i].Value)
			}
		}
		return len(d.mp) < len(o.mp)
	default:
		return false
	}
}

func lessSlice(a, b []Data) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if !a[i].Equal(b[i]) {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}
