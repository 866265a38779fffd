package btf

import (
	"bytes"
	"encoding/binary"
)

// blobBuilder assembles a synthetic in-memory BTF blob the way a real
// BTF emitter would: a fixed header followed by a type section and a
// string section, both offsets relative to the end of the header.
// Tests build blobs with this instead of shipping binary fixtures, the
// same "construct a minimal valid document in code" style
// moby-moby/errdefs's table-driven tests use for synthetic errors.
type blobBuilder struct {
	types   bytes.Buffer
	strs    bytes.Buffer
	strOffs map[string]uint32
}

func newBlobBuilder() *blobBuilder {
	b := &blobBuilder{strOffs: map[string]uint32{}}
	b.strs.WriteByte(0) // offset 0 is always the empty string
	return b
}

func (b *blobBuilder) str(s string) uint32 {
	if s == "" {
		return 0
	}
	if off, ok := b.strOffs[s]; ok {
		return off
	}
	off := uint32(b.strs.Len())
	b.strs.WriteString(s)
	b.strs.WriteByte(0)
	b.strOffs[s] = off
	return off
}

func (b *blobBuilder) u32(v uint32) { binary.Write(&b.types, binary.LittleEndian, v) }

// typeHeader appends a common 12-byte type header.
func (b *blobBuilder) typeHeader(nameOff uint32, vlen uint16, kind uint8, kindFlag bool, sizeOrType uint32) {
	info := uint32(vlen) | uint32(kind&0x1F)<<24
	if kindFlag {
		info |= 1 << 31
	}
	b.u32(nameOff)
	b.u32(info)
	b.u32(sizeOrType)
}

// build assembles the final blob bytes.
func (b *blobBuilder) build() []byte {
	const hdrLen = 24
	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, uint16(btfMagic))
	out.WriteByte(1) // version
	out.WriteByte(0) // flags
	binary.Write(&out, binary.LittleEndian, uint32(hdrLen))
	binary.Write(&out, binary.LittleEndian, uint32(0))
	binary.Write(&out, binary.LittleEndian, uint32(b.types.Len()))
	binary.Write(&out, binary.LittleEndian, uint32(b.types.Len()))
	binary.Write(&out, binary.LittleEndian, uint32(b.strs.Len()))
	out.Write(b.types.Bytes())
	out.Write(b.strs.Bytes())
	return out.Bytes()
}

// buildBigEndian mirrors build but emits a byte-swapped magic and
// big-endian fixed-width fields, for endianness-detection tests.
func (b *blobBuilder) buildBigEndian() []byte {
	const hdrLen = 24
	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint16(btfMagic))
	out.WriteByte(1)
	out.WriteByte(0)
	binary.Write(&out, binary.BigEndian, uint32(hdrLen))
	binary.Write(&out, binary.BigEndian, uint32(0))
	binary.Write(&out, binary.BigEndian, uint32(b.types.Len()))
	binary.Write(&out, binary.BigEndian, uint32(b.types.Len()))
	binary.Write(&out, binary.BigEndian, uint32(b.strs.Len()))

	typesBE := swapWords(b.types.Bytes())
	out.Write(typesBE)
	out.Write(b.strs.Bytes())
	return out.Bytes()
}

// swapWords reassembles the little-endian-encoded type section words
// this builder wrote into big-endian form, word by word, so
// buildBigEndian can reuse the same typeHeader/u32 calls as build.
func swapWords(le []byte) []byte {
	out := make([]byte, len(le))
	for i := 0; i+4 <= len(le); i += 4 {
		v := binary.LittleEndian.Uint32(le[i : i+4])
		binary.BigEndian.PutUint32(out[i:i+4], v)
	}
	return out
}
