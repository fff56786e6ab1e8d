package data

import (
	"encoding/binary"
	"io"
	"net/netip"
	"time"

	"github.com/vastcore/vast/pkg/vasterr"
	"github.com/vastcore/vast/pkg/vtype"
)

func durationFromNanos(v int64) time.Duration { return time.Duration(v) }

func timeFromUnixNano(v int64) time.Time { return time.Unix(0, v).UTC() }

// Encode writes d's wire representation to w, shaped by t (see spec.md §6:
// "body: impl-defined", of which this is the per-cell piece every layout's
// body format is built from). A leading presence byte lets a none value
// stand in for any type, per spec.md §3's type_check rule.
func Encode(w io.Writer, t vtype.Type, d Data) error {
	if d.IsNone() {
		_, err := w.Write([]byte{0})
		return err
	}
	if _, err := w.Write([]byte{1}); err != nil {
		return err
	}
	rt := derefAlias(t)
	switch rt.Kind() {
	case vtype.KindBool:
		b := byte(0)
		if d.Bool() {
			b = 1
		}
		_, err := w.Write([]byte{b})
		return err
	case vtype.KindInteger:
		return binary.Write(w, binary.BigEndian, d.Integer())
	case vtype.KindCount:
		return binary.Write(w, binary.BigEndian, d.Count())
	case vtype.KindReal:
		return binary.Write(w, binary.BigEndian, d.Real())
	case vtype.KindDuration:
		return binary.Write(w, binary.BigEndian, int64(d.Duration()))
	case vtype.KindTime:
		return binary.Write(w, binary.BigEndian, d.Time().UnixNano())
	case vtype.KindString, vtype.KindPattern:
		return writeString(w, d.s)
	case vtype.KindAddress:
		return writeAddr(w, d.Address())
	case vtype.KindSubnet:
		sn := d.Subnet()
		if err := writeAddr(w, sn.Addr()); err != nil {
			return err
		}
		return binary.Write(w, binary.BigEndian, uint8(sn.Bits()))
	case vtype.KindPort:
		p := d.Port()
		if err := binary.Write(w, binary.BigEndian, p.Number); err != nil {
			return err
		}
		return writeString(w, p.Protocol)
	case vtype.KindEnum:
		return binary.Write(w, binary.BigEndian, uint32(d.EnumIndex()))
	case vtype.KindVector:
		return writeSeq(w, rt.Elem(), d.vec)
	case vtype.KindSet:
		return writeSeq(w, rt.Elem(), d.set)
	case vtype.KindMap:
		if err := binary.Write(w, binary.BigEndian, uint32(len(d.mp))); err != nil {
			return err
		}
		for _, e := range d.mp {
			if err := Encode(w, rt.Key(), e.Key); err != nil {
				return err
			}
			if err := Encode(w, rt.Value(), e.Value); err != nil {
				return err
			}
		}
		return nil
	case vtype.KindRecord:
		for i, f := range rt.Fields() {
			if i >= len(d.rec) {
				return vasterr.New(vasterr.InconsistentSchema, "record data has fewer fields than its type")
			}
			if err := Encode(w, f.Type, d.rec[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return vasterr.New(vasterr.InconsistentSchema, "cannot encode type kind "+rt.Kind().String())
	}
}

func writeSeq(w io.Writer, elem vtype.Type, xs []Data) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(xs))); err != nil {
		return err
	}
	for _, x := range xs {
		if err := Encode(w, elem, x); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeAddr(w io.Writer, a netip.Addr) error {
	b := a.As16()
	family := byte(6)
	if a.Is4() {
		family = 4
	}
	if _, err := w.Write([]byte{family}); err != nil {
		return err
	}
	if family == 4 {
		a4 := a.As4()
		_, err := w.Write(a4[:])
		return err
	}
	_, err := w.Write(b[:])
	return err
}

// Decode reads a Data value shaped by t from r, the inverse of Encode.
func Decode(r io.Reader, t vtype.Type) (Data, error) {
	var presence [1]byte
	if _, err := io.ReadFull(r, presence[:]); err != nil {
		return Data{}, err
	}
	if presence[0] == 0 {
		return None(), nil
	}
	rt := derefAlias(t)
	switch rt.Kind() {
	case vtype.KindBool:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Data{}, err
		}
		return Bool(b[0] != 0), nil
	case vtype.KindInteger:
		var v int64
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return Data{}, err
		}
		return Integer(v), nil
	case vtype.KindCount:
		var v uint64
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return Data{}, err
		}
		return Count(v), nil
	case vtype.KindReal:
		var v float64
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return Data{}, err
		}
		return Real(v), nil
	case vtype.KindDuration:
		var v int64
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return Data{}, err
		}
		return Dur(durationFromNanos(v)), nil
	case vtype.KindTime:
		var v int64
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return Data{}, err
		}
		return Time(timeFromUnixNano(v)), nil
	case vtype.KindString:
		s, err := readString(r)
		if err != nil {
			return Data{}, err
		}
		return Str(s), nil
	case vtype.KindPattern:
		s, err := readString(r)
		if err != nil {
			return Data{}, err
		}
		return Pattern(s), nil
	case vtype.KindAddress:
		a, err := readAddr(r)
		if err != nil {
			return Data{}, err
		}
		return Address(a), nil
	case vtype.KindSubnet:
		a, err := readAddr(r)
		if err != nil {
			return Data{}, err
		}
		var bits [1]byte
		if _, err := io.ReadFull(r, bits[:]); err != nil {
			return Data{}, err
		}
		return Subnet(netip.PrefixFrom(a, int(bits[0]))), nil
	case vtype.KindPort:
		var num uint16
		if err := binary.Read(r, binary.BigEndian, &num); err != nil {
			return Data{}, err
		}
		proto, err := readString(r)
		if err != nil {
			return Data{}, err
		}
		return PortVal(num, proto), nil
	case vtype.KindEnum:
		var v uint32
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return Data{}, err
		}
		return Enum(int(v)), nil
	case vtype.KindVector:
		xs, err := readSeq(r, rt.Elem())
		if err != nil {
			return Data{}, err
		}
		return Vector(xs...), nil
	case vtype.KindSet:
		xs, err := readSeq(r, rt.Elem())
		if err != nil {
			return Data{}, err
		}
		return Set(xs...), nil
	case vtype.KindMap:
		var n uint32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return Data{}, err
		}
		entries := make([]MapEntry, 0, n)
		for i := uint32(0); i < n; i++ {
			k, err := Decode(r, rt.Key())
			if err != nil {
				return Data{}, err
			}
			v, err := Decode(r, rt.Value())
			if err != nil {
				return Data{}, err
			}
			entries = append(entries, MapEntry{Key: k, Value: v})
		}
		return Map(entries...), nil
	case vtype.KindRecord:
		fields := make([]Data, 0, len(rt.Fields()))
		for _, f := range rt.Fields() {
			v, err := Decode(r, f.Type)
			if err != nil {
				return Data{}, err
			}
			fields = append(fields, v)
		}
		return Record(fields...), nil
	default:
		return Data{}, vasterr.New(vasterr.InconsistentSchema, "cannot decode type kind "+rt.Kind().String())
	}
}

func readSeq(r io.Reader, elem vtype.Type) ([]Data, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	xs := make([]Data, 0, n)
	for i := uint32(0); i < n; i++ {
		x, err := Decode(r, elem)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func readAddr(r io.Reader) (netip.Addr, error) {
	var family [1]byte
	if _, err := io.ReadFull(r, family[:]); err != nil {
		return netip.Addr{}, err
	}
	if family[0] == 4 {
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return netip.Addr{}, err
		}
		return netip.AddrFrom4(b), nil
	}
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return netip.Addr{}, err
	}
	return netip.AddrFrom16(b), nil
}
