// Package bitpack holds the pure bit-layout arithmetic shared by the
// type-header decoder and every per-kind decoder: decomposing the
// packed info word, decomposing Int's trailing encoding word, and
// computing the file range a validation error should point at.
//
// It knows nothing about BTF's decoded entry types, the same way the
// teacher's internal/gpt.go and internal/mbr.go knew nothing about
// EWFImage — a raw structural helper the root package calls into, not
// the other way around.
package bitpack

// FileRange is a byte-offset/length pair describing the bytes a
// decoding error should be attributed to.
type FileRange struct {
	Offset int64
	Size   int64
}

// DecomposeInfo splits the common type header's packed `info` word
// per spec.md §3: vlen in bits [0,16), kind in bits [24,29), kind_flag
// in bit 31. Bits [16,24) and [29,31) are reserved and ignored.
func DecomposeInfo(info uint32) (vlen uint16, kind uint8, kindFlag bool) {
	vlen = uint16(info & 0xFFFF)
	kind = uint8((info >> 24) & 0x1F)
	kindFlag = (info>>31)&1 != 0
	return vlen, kind, kindFlag
}

// DecomposeIntInfo splits Int's trailing `integer_info` word per
// spec.md §4.6: encoding in bits [24,28), offset in bits [16,24), bits
// in bits [0,8).
func DecomposeIntInfo(info uint32) (encoding uint8, offset uint8, bits uint8) {
	encoding = uint8((info >> 24) & 0x0F)
	offset = uint8((info >> 16) & 0xFF)
	bits = uint8(info & 0xFF)
	return encoding, offset, bits
}

// TypeHeaderRange computes the file_range every per-kind decoder's
// common prologue reports validation errors against: the just-consumed
// type header plus however many trailer bytes that kind reads before
// the violated rule is discovered (spec.md §4.6).
func TypeHeaderRange(headerOffset int64, headerSize, trailerSize int64) FileRange {
	return FileRange{
		Offset: headerOffset,
		Size:   headerSize + trailerSize,
	}
}
