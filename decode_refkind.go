package btf

// decodePtr, decodeConst, and decodeVolatile share a shape: no
// trailer beyond the common header, size_or_type reused as the
// referenced type ID (spec.md §4.6 "Ptr, Const, Volatile ... No
// trailer"). Each still gets its own function so Entry construction
// stays a single lookup in catalog.go's dispatch table rather than a
// shared return type needing a second discriminator.
//
// All three are anonymous qualifiers/references: spec.md §4.6 requires
// name_off == 0, kind_flag == 0, and vlen == 0. size_or_type is a type
// ID reference, not a size, so 0 is a legitimate value — it denotes
// `void` (`void *`, `const void`, `volatile void`) and must not be
// rejected.

func decodePtr(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff != 0 || th.kindFlag || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidPtrBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	return &Ptr{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		Type:      int(th.sizeOrType),
	}, nil
}

func decodeConst(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff != 0 || th.kindFlag || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidConstBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	return &Const{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		Type:      int(th.sizeOrType),
	}, nil
}

func decodeVolatile(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff != 0 || th.kindFlag || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidVolatileBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	return &Volatile{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		Type:      int(th.sizeOrType),
	}, nil
}
