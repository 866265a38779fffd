package btf

import (
	"github.com/laenix/btfgo/internal/bitpack"
	"github.com/laenix/btfgo/reader"
)

// typeHeaderSize is the fixed size, in bytes, of every type entry's
// common header: name_off (u32), info (u32), size_or_type (u32).
const typeHeaderSize = 12

// typeHeader is the common prologue every type entry begins with
// (spec.md §3): a name offset into the string table, a packed info
// word carrying vlen/kind/kind_flag, and a trailing word whose meaning
// (a byte size or a referenced type ID) depends on kind.
type typeHeader struct {
	offset     int64 // file offset this header started at
	nameOff    uint32
	vlen       uint16
	kind       uint8
	kindFlag   bool
	sizeOrType uint32
}

// readTypeHeader reads one common type header at the reader's current
// position and decomposes its info word via internal/bitpack.
func readTypeHeader(r reader.ByteReader) (*typeHeader, error) {
	start, err := r.Offset()
	if err != nil {
		return nil, mapReadError(err)
	}
	nameOff, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	info, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	sizeOrType, err := r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	vlen, kind, kindFlag := bitpack.DecomposeInfo(info)
	return &typeHeader{
		offset:     start,
		nameOff:    nameOff,
		vlen:       vlen,
		kind:       kind,
		kindFlag:   kindFlag,
		sizeOrType: sizeOrType,
	}, nil
}

// rangeWithTrailer computes the file range a decoder built on this
// header should attribute a validation error to: the header itself
// plus trailerSize additional bytes already consumed past it.
func (h *typeHeader) rangeWithTrailer(trailerSize int64) bitpack.FileRange {
	return bitpack.TypeHeaderRange(h.offset, typeHeaderSize, trailerSize)
}
