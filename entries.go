package btf

// Entry is the tagged-union interface every decoded type implements
// (spec.md §3): a Kind discriminator plus a Name, which is empty for
// anonymous types (structs, unions, and enums declared inline).
type Entry interface {
	Kind() Kind
	Name() string
	id() int
}

// entryBase carries the fields common to every Entry: its 1-based type
// ID (index into the catalog) and its resolved name.
type entryBase struct {
	typeID int
	name   string
}

func (e entryBase) Name() string { return e.name }
func (e entryBase) id() int      { return e.typeID }

// IntEncoding classifies an Int entry's representation (spec.md §4.6).
type IntEncoding uint8

const (
	IntEncodingNone IntEncoding = iota
	IntEncodingSigned
	IntEncodingChar
	IntEncodingBool
)

func (e IntEncoding) String() string {
	switch e {
	case IntEncodingSigned:
		return "signed"
	case IntEncodingChar:
		return "char"
	case IntEncodingBool:
		return "bool"
	default:
		return "none"
	}
}

// Int is a base integer type: a bit width and bit offset within its
// storage, plus a representation encoding.
type Int struct {
	entryBase
	ByteSize  int
	Encoding  IntEncoding
	BitOffset uint8
	Bits      uint8
}

func (Int) Kind() Kind { return KindInt }

// Ptr is a pointer type referencing another type by ID.
type Ptr struct {
	entryBase
	Type int
}

func (Ptr) Kind() Kind { return KindPtr }

// Const is a const-qualifier wrapping another type by ID.
type Const struct {
	entryBase
	Type int
}

func (Const) Kind() Kind { return KindConst }

// Volatile is a volatile-qualifier wrapping another type by ID.
type Volatile struct {
	entryBase
	Type int
}

func (Volatile) Kind() Kind { return KindVolatile }

// Array is a fixed-length array of Type, indexed by IndexType, holding
// NumElems elements.
type Array struct {
	entryBase
	Type      int
	IndexType int
	NumElems  uint32
}

func (Array) Kind() Kind { return KindArray }

// Typedef is a named alias for another type.
type Typedef struct {
	entryBase
	Type int
}

func (Typedef) Kind() Kind { return KindTypedef }

// EnumValue is one named constant of an Enum.
type EnumValue struct {
	Name  string
	Value int32
}

// Enum is an enumeration: its underlying storage size and its ordered
// list of named values. kind_flag carries no meaning for Enum (spec.md
// §4.6 requires it be 0), so there is no signedness field here.
type Enum struct {
	entryBase
	ByteSize int
	Values   []EnumValue
}

func (Enum) Kind() Kind { return KindEnum }

// FwdKind distinguishes which aggregate kind a forward declaration
// stands in for.
type FwdKind uint8

const (
	FwdKindStruct FwdKind = iota
	FwdKindUnion
)

func (f FwdKind) String() string {
	if f == FwdKindUnion {
		return "union"
	}
	return "struct"
}

// Fwd is a forward declaration of a struct or union with no member
// list, distinguished by kind_flag (spec.md §4.6).
type Fwd struct {
	entryBase
	FwdKind FwdKind
}

func (Fwd) Kind() Kind { return KindFwd }

// Param is one named, typed parameter of a FuncProto.
type Param struct {
	Name string
	Type int
}

// FuncProto is a function signature: an ordered parameter list plus
// the referenced return type (SPEC_FULL.md §3's ReturnType decision).
// Variadic is true when the encoded parameter list ended in a trailing
// anonymous (name_off=0, type=0) marker; that marker is stripped from
// Params by decodeFuncProto, so Params never contains it (spec.md §3,
// §4.6, testable property 6).
type FuncProto struct {
	entryBase
	ReturnType int
	Params     []Param
	Variadic   bool
}

func (FuncProto) Kind() Kind { return KindFuncProto }

// Member is one field of a Struct or Union: its name, referenced
// type, and bit offset within the aggregate.
type Member struct {
	Name      string
	Type      int
	BitOffset uint32
}

// Struct is an aggregate type with an ordered, named member list.
type Struct struct {
	entryBase
	ByteSize int
	Members  []Member
}

func (Struct) Kind() Kind { return KindStruct }

// Union is an aggregate type with an ordered, named member list, all
// sharing byte offset 0.
type Union struct {
	entryBase
	ByteSize int
	Members  []Member
}

func (Union) Kind() Kind { return KindUnion }

// Func is a named function symbol referencing a FuncProto type. vlen
// carries no meaning for Func (spec.md §4.6 requires it be 0), so
// there is no linkage field here.
type Func struct {
	entryBase
	Type int
}

func (Func) Kind() Kind { return KindFunc }
