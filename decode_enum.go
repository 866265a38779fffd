package btf

// decodeEnum decodes an Enum entry. The common header's vlen gives the
// number of trailing (name_off u32, value i32) pairs; size_or_type is
// reused as the enum's byte size and must be one of the kernel's fixed
// integer widths. kind_flag carries no meaning for Enum and must be 0
// (spec.md §4.6); every value's name_off must be non-zero (invariant
// 4: every value name is non-empty).
func decodeEnum(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.kindFlag || th.vlen == 0 {
		return nil, newErrorAt(CodeInvalidEnumBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	switch th.sizeOrType {
	case 1, 2, 4, 8:
	default:
		return nil, newErrorAt(CodeInvalidEnumBTFTypeEncoding, th.rangeWithTrailer(0))
	}

	values := make([]EnumValue, 0, th.vlen)
	for i := uint16(0); i < th.vlen; i++ {
		nameOff, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		raw, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		if nameOff == 0 {
			return nil, newErrorAt(CodeInvalidEnumBTFTypeEncoding, th.rangeWithTrailer(int64(i+1)*8))
		}
		values = append(values, EnumValue{
			Name:  ctx.strs.at(nameOff),
			Value: int32(raw),
		})
	}

	return &Enum{
		entryBase: entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		ByteSize:  int(th.sizeOrType),
		Values:    values,
	}, nil
}
