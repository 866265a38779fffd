package btf

import (
	"github.com/laenix/btfgo/internal/bitpack"
	"github.com/laenix/btfgo/reader"
)

// btfMagic is the BTF blob's magic value in its native (little-endian)
// framing (spec.md §4.4). A big-endian blob reads back 0x9FEB instead.
const btfMagic = 0xeB9F

// Header is the fixed-size BTF file header: magic, version, flags, and
// the offsets/lengths of the type section and the string section that
// follow it, all measured relative to the end of the header itself.
type Header struct {
	Magic        uint16
	Version      uint8
	Flags        uint8
	HdrLen       uint32
	TypeOff      uint32
	TypeLen      uint32
	StrOff       uint32
	StrLen       uint32
	LittleEndian bool
}

// readHeader reads and validates the BTF header at the reader's
// current position (spec.md §4.4): it first probes the magic value in
// little-endian framing, falling back to big-endian on a byte-swapped
// match, then rejects anything else as InvalidMagicValue. Every
// remaining field is read in the detected endianness.
func readHeader(r reader.ByteReader) (*Header, error) {
	start, err := r.Offset()
	if err != nil {
		return nil, mapReadError(err)
	}

	r.SetLittleEndian(true)
	magic, err := r.U16()
	if err != nil {
		return nil, mapReadError(err)
	}

	little := true
	switch magic {
	case btfMagic:
		little = true
	case swap16(btfMagic):
		little = false
	default:
		return nil, newErrorAt(CodeInvalidMagicValue, bitpack.FileRange{Offset: start, Size: 2})
	}
	r.SetLittleEndian(little)

	version, err := r.U8()
	if err != nil {
		return nil, mapReadError(err)
	}
	flags, err := r.U8()
	if err != nil {
		return nil, mapReadError(err)
	}
	hdrLen, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	typeOff, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	typeLen, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	strOff, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	strLen, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}

	return &Header{
		Magic:        magic,
		Version:      version,
		Flags:        flags,
		HdrLen:       hdrLen,
		TypeOff:      typeOff,
		TypeLen:      typeLen,
		StrOff:       strOff,
		StrLen:       strLen,
		LittleEndian: little,
	}, nil
}

func swap16(v uint16) uint16 {
	return v<<8 | v>>8
}
