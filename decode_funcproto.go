package btf

// decodeFuncProto decodes a FuncProto entry. vlen gives the number of
// trailing (name_off u32, type u32) parameter pairs; size_or_type is
// reused as the return type ID (SPEC_FULL.md §3's ReturnType decision,
// matching real kernel BTF semantics where the original spec is
// silent). A parameter's name_off may legitimately be 0 — unnamed
// parameters encode that way. A trailing anonymous (name_off=0,
// type=0) parameter marks the function as variadic (spec.md §3,
// §4.6, testable property 6) and is stripped out of Params rather
// than surfaced as a bogus final parameter. A FuncProto itself is
// anonymous: name_off and kind_flag must be 0.
func decodeFuncProto(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error) {
	if th.nameOff != 0 || th.kindFlag {
		return nil, newErrorAt(CodeInvalidFuncProtoBTFTypeEncoding, th.rangeWithTrailer(0))
	}
	params := make([]Param, 0, th.vlen)
	for i := uint16(0); i < th.vlen; i++ {
		nameOff, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		typ, err := ctx.r.U32()
		if err != nil {
			return nil, mapReadError(err)
		}
		params = append(params, Param{
			Name: ctx.strs.at(nameOff),
			Type: int(typ),
		})
	}

	variadic := false
	if n := len(params); n > 0 && params[n-1].Name == "" && params[n-1].Type == 0 {
		variadic = true
		params = params[:n-1]
	}

	return &FuncProto{
		entryBase:  entryBase{typeID: typeID, name: ctx.strs.at(th.nameOff)},
		ReturnType: int(th.sizeOrType),
		Params:     params,
		Variadic:   variadic,
	}, nil
}
