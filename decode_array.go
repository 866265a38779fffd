package btf

// decodeArray decodes an Array entry. Array is anonymous and carries
// no size_or_type in the common header: spec.md §4.6 requires
// name_off == 0, kind_flag == 0, vlen == 0, and size_or_type == 0.
// Instead a fixed trailer of three u32s follows: element type, index
// type, element count.
func decodeArray(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff != 0 || th.kindFlag || th.vlen != 0 || th.sizeOrType != 0 {
		return nil, newErrorAt(CodeInvalidArrayBTFTypeEncoding, th.rangeWithTrailer(0))
	}

	elemType, err := ctx.r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	indexType, err := ctx.r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}
	numElems, err := ctx.r.U32()
	if err != nil {
		return nil, mapReadError(err)
	}

	return &Array{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		Type:      int(elemType),
		IndexType: int(indexType),
		NumElems:  numElems,
	}, nil
}
