package btf

// Kind identifies the variant of a decoded type entry, matching the
// kernel's BTF_KIND_* numbering (spec.md §3) so raw kind bytes from a
// blob map onto Kind without translation.
type Kind uint8

const (
	KindUnknown   Kind = 0
	KindInt       Kind = 1
	KindPtr       Kind = 2
	KindArray     Kind = 3
	KindStruct    Kind = 4
	KindUnion     Kind = 5
	KindEnum      Kind = 6
	KindFwd       Kind = 7
	KindTypedef   Kind = 8
	KindVolatile  Kind = 9
	KindConst     Kind = 10
	KindRestrict  Kind = 11
	KindFunc      Kind = 12
	KindFuncProto Kind = 13
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "UNKN"
	case KindInt:
		return "INT"
	case KindPtr:
		return "PTR"
	case KindArray:
		return "ARRAY"
	case KindStruct:
		return "STRUCT"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindFwd:
		return "FWD"
	case KindTypedef:
		return "TYPEDEF"
	case KindVolatile:
		return "VOLATILE"
	case KindConst:
		return "CONST"
	case KindRestrict:
		return "RESTRICT"
	case KindFunc:
		return "FUNC"
	case KindFuncProto:
		return "FUNC_PROTO"
	default:
		return "INVALID"
	}
}

// supported reports whether k is one of the kinds this decoder knows
// how to turn into an Entry. RESTRICT and anything above FUNC_PROTO
// (VAR, DATASEC, FLOAT, DECL_TAG, TYPE_TAG, ENUM64) are left undecoded
// per SPEC_FULL.md §9 — a blob carrying them fails with InvalidBTFKind
// rather than being silently skipped.
func (k Kind) supported() bool {
	switch k {
	case KindInt, KindPtr, KindArray, KindStruct, KindUnion, KindEnum,
		KindFwd, KindTypedef, KindVolatile, KindConst, KindFunc, KindFuncProto:
		return true
	default:
		return false
	}
}
