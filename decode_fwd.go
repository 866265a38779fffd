package btf

// decodeFwd decodes a Fwd entry: no trailer, size_or_type unused and
// required to be 0, kind_flag distinguishes a forward-declared struct
// from a forward-declared union (spec.md §4.6). A forward declaration
// is always named and carries no vlen.
func decodeFwd(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.sizeOrType != 0 || th.nameOff == 0 || th.vlen != 0 {
		return nil, newErrorAt(CodeInvalidFwdBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	fk := FwdKindStruct
	if th.kindFlag {
		fk = FwdKindUnion
	}
	return &Fwd{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		FwdKind:   fk,
	}, nil
}
