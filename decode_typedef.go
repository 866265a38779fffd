package btf

// decodeTypedef decodes a Typedef entry: no trailer, size_or_type
// reused as the aliased type ID, name_off required to be non-empty
// since an anonymous typedef has no meaning (spec.md §4.6). kind_flag
// and vlen carry no meaning and must be 0; size_or_type may be 0 (an
// alias for void).
func decodeTypedef(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff == 0 || th.kindFlag || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidTypedefBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	return &Typedef{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		Type:      int(th.sizeOrType),
	}, nil
}
