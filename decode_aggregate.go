package btf

// decodeAggregate decodes the member list shared by Struct and Union
// (spec.md §4.6: "Identical decoders parameterized by which variant to
// emit"). vlen gives the member count; each member is a (name_off u32,
// type u32, offset u32) triple. kind_flag marks whether offset packs a
// bitfield width in its high byte; this decoder stores the raw offset
// word unchanged rather than splitting it (SPEC_FULL.md §9 Open
// Question decision) since neither spec.md nor original_source/ defines
// the split's semantics.
func decodeAggregate(ctx *decodeContext, th *typeHeader, typeID int, union bool) (Entry, error) {
	members := make([]Member, 0, th.vlen)
	for i := uint16(0); i < th.vlen; i++ {
		nameOff, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		typ, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		off, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		if typ == 0 {
			return nil, newErrorAt(CodeInvalidAggregateBTFTypeEncoding, th.rangeWithTrailer(int64(i+1)*12))
		}
		members = append(members, Member{
			Name:      ctx.strs.at(nameOff),
			Type:      int(typ),
			BitOffset: off,
		})
	}

	name := ctx.strs.at(th.nameOff)
	if union {
		return &Union{
			entryBase: entryBase{typeID: typeID, name: name},
			ByteSize:  int(th.sizeOrType),
			Members:   members,
		}, nil
	}
	return &Struct{
		entryBase: entryBase{typeID: typeID, name: name},
		ByteSize:  int(th.sizeOrType),
		Members:   members,
	}, nil
}

func decodeStruct(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	return decodeAggregate(ctx, th, typeID, false)
}

func decodeUnion(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	return decodeAggregate(ctx, th, typeID, true)
}
