package btf

import "github.com/laenix/btfgo/internal/bitpack"

// decodeInt decodes an Int entry. Beyond the common header, Int reads
// one trailing word (spec.md §4.6) packing encoding/offset/bits; the
// header's size_or_type doubles as the type's byte size and must be
// one of the kernel's fixed integer widths. name_off must be non-zero
// (Int is always named, e.g. "int", "char"); kind_flag and vlen carry
// no meaning and must be 0.
func decodeInt(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	info, err := ctx.r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	encoding, offset, bits := bitpack.DecomposeIntInfo(info)

	if th.nameOff == 0 || th.kindFlag || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidIntBTFTypeEncoding, th.rangeWithTrailer(4))
	}
	switch th.sizeOrType {
	case 1, 2, 4, 8, 16:
	default:
		return nil, newErrorAt(CodeInvalidIntBTFTypeEncoding, th.rangeWithTrailer(4))
	}
	if bits == 0 || uint32(offset)+uint32(bits) > th.sizeOrType*8 {
		return nil, newErrorAt(CodeInvalidIntBTFTypeEncoding, th.rangeWithTrailer(4))
	}

	var enc IntEncoding
	switch {
	case encoding&0x1 != 0:
		enc = IntEncodingSigned
	case encoding&0x2 != 0:
		enc = IntEncodingChar
	case encoding&0x4 != 0:
		enc = IntEncodingBool
	default:
		enc = IntEncodingNone
	}

	return &Int{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		ByteSize:  int(th.sizeOrType),
		Encoding:  enc,
		BitOffset: offset,
		Bits:      bits,
	}, nil
}
