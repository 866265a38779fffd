package btf

// decodeFunc decodes a Func entry: no trailer, size_or_type reused as
// the referenced FuncProto type ID. name_off must be non-zero (a Func
// is always named); kind_flag and vlen carry no meaning and spec.md
// §4.6 requires vlen == 0.
func decodeFunc(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff == 0 || th.kindFlag || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidFuncBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	return &Func{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		Type:      int(th.sizeOrType),
	}, nil
}
