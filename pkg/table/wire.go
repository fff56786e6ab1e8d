package table

import (
	"encoding/binary"
	"io"

	"github.com/vastcore/vast/pkg/vasterr"
	"github.com/vastcore/vast/pkg/vtype"
)

// Header is the common prefix of every slice's wire frame (spec.md §6):
// the implementation tag, the record layout (in its textual form, re-parsed
// on read against an empty symbol table — see DESIGN.md's Open Question on
// wire layout encoding), and the shape. Each layout's body format follows
// immediately after, written by that layout's own encoder.
type Header struct {
	ImplID  ImplID
	Layout  vtype.Type
	Rows    uint64
	Columns uint64
	Offset  uint64
}

// WriteHeader writes h's fixed-width fields followed by the layout's
// length-prefixed textual form, all big-endian, mirroring the fixed-width,
// explicit-byte-order convention internal/format used for on-disk cell
// headers in the teacher.
func WriteHeader(w io.Writer, h Header) error {
	if err := binary.Write(w, binary.BigEndian, uint32(h.ImplID)); err != nil {
		return err
	}
	text := vtype.Print(h.Layout)
	if err := binary.Write(w, binary.BigEndian, uint32(len(text))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, h.Rows); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, h.Columns); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, h.Offset)
}

// ReadHeader reads the common frame prefix written by WriteHeader.
func ReadHeader(r io.Reader) (Header, error) {
	var implID uint32
	if err := binary.Read(r, binary.BigEndian, &implID); err != nil {
		return Header{}, err
	}
	var textLen uint32
	if err := binary.Read(r, binary.BigEndian, &textLen); err != nil {
		return Header{}, err
	}
	buf := make([]byte, textLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, err
	}
	layout, err := vtype.Parse(string(buf), nil)
	if err != nil {
		return Header{}, vasterr.Wrap(vasterr.IOError, "decode slice layout", err)
	}
	var rows, cols, offset uint64
	if err := binary.Read(r, binary.BigEndian, &rows); err != nil {
		return Header{}, err
	}
	if err := binary.Read(r, binary.BigEndian, &cols); err != nil {
		return Header{}, err
	}
	if err := binary.Read(r, binary.BigEndian, &offset); err != nil {
		return Header{}, err
	}
	return Header{ImplID: ImplID(implID), Layout: layout, Rows: rows, Columns: cols, Offset: offset}, nil
}

// bodyDecoder reads a layout's body (everything after the common header)
// and reconstructs its Slice.
type bodyDecoder func(r io.Reader, hdr Header) (Slice, error)

var decoders = map[ImplID]bodyDecoder{}

// RegisterLayout lets a layout package (layout/generic, layout/matrix)
// plug its body decoder into Deserialize without pkg/table importing it —
// the layout packages import pkg/table, never the reverse, so each layout
// registers itself from an init().
func RegisterLayout(id ImplID, dec bodyDecoder) {
	decoders[id] = dec
}

// Deserialize reads a full slice wire frame: the common header, then
// dispatches to whichever layout registered under the header's ImplID. A
// failed read or an unregistered ImplID aborts this single read and leaves
// r wherever reading stopped, inside the failed frame. The frame carries no
// overall length, so the start of the next slice cannot be found from there.
func Deserialize(r io.Reader) (Slice, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	dec, ok := decoders[hdr.ImplID]
	if !ok {
		return nil, vasterr.New(vasterr.IOError, "no layout registered for implementation id")
	}
	return dec(r, hdr)
}
