package btf

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/laenix/btfgo/reader"
	"gotest.tools/v3/assert"
)

func TestDecodeIntAndStruct(t *testing.T) {
	b := newBlobBuilder()
	intName := b.str("int")
	fooName := b.str("foo")
	xName := b.str("x")

	// type 1: INT "int", size 4, signed, bits 32, offset 0
	b.typeHeader(intName, 0, uint8(KindInt), false, 4)
	b.u32(uint32(1)<<24 | uint32(0)<<16 | uint32(32))

	// type 2: STRUCT "foo", size 4, one member "x" of type 1 at bit offset 0
	b.typeHeader(fooName, 1, uint8(KindStruct), false, 4)
	b.u32(xName)
	b.u32(1)
	b.u32(0)

	blob := b.build()
	cat, err := Decode(reader.NewBufReader(bytes.NewReader(blob)))
	assert.NilError(t, err)
	assert.Equal(t, len(cat.Entries()), 2)

	e1, ok := cat.ByID(1)
	assert.Assert(t, ok)
	i, ok := e1.(*Int)
	assert.Assert(t, ok)
	assert.Equal(t, i.Name(), "int")
	assert.Equal(t, i.ByteSize, 4)
	assert.Equal(t, i.Encoding, IntEncodingSigned)
	assert.Equal(t, i.Bits, uint8(32))

	e2, ok := cat.ByID(2)
	assert.Assert(t, ok)
	s, ok := e2.(*Struct)
	assert.Assert(t, ok)
	assert.Equal(t, s.Name(), "foo")
	assert.Equal(t, len(s.Members), 1)
	assert.Equal(t, s.Members[0].Name, "x")
	assert.Equal(t, s.Members[0].Type, 1)
}

func TestDecodeUnsupportedKindFails(t *testing.T) {
	b := newBlobBuilder()
	// kind 11 is RESTRICT, never dispatched.
	b.typeHeader(0, 0, 11, false, 1)
	blob := b.build()

	_, err := Decode(reader.NewBufReader(bytes.NewReader(blob)))
	assert.Assert(t, err != nil)
	assert.Assert(t, IsInvalidKind(err))
}

func TestDecodeEmptyTypeSection(t *testing.T) {
	b := newBlobBuilder()
	blob := b.build()
	cat, err := Decode(reader.NewBufReader(bytes.NewReader(blob)))
	assert.NilError(t, err)
	assert.Equal(t, len(cat.Entries()), 0)
}

// entrySummary renders an Entry's exported shape for comparison,
// sidestepping entryBase's unexported fields so two Entry slices can
// be compared without a reflection-based deep-equal tripping over them.
func entrySummary(e Entry) string {
	switch v := e.(type) {
	case *Int:
		return fmt.Sprintf("Int name=%q size=%d enc=%s bitoff=%d bits=%d", v.Name(), v.ByteSize, v.Encoding, v.BitOffset, v.Bits)
	case *Struct:
		return fmt.Sprintf("Struct name=%q size=%d members=%v", v.Name(), v.ByteSize, v.Members)
	default:
		return fmt.Sprintf("%s name=%q", e.Kind(), e.Name())
	}
}

func catalogSummary(cat *Catalog) []string {
	out := make([]string, len(cat.Entries()))
	for i, e := range cat.Entries() {
		out[i] = entrySummary(e)
	}
	return out
}

// TestDecodeEndiannessEquivalence is testable property 5 / scenario
// S6: the same logical content, encoded once little-endian and once
// big-endian, must decode to equal catalogs.
func TestDecodeEndiannessEquivalence(t *testing.T) {
	build := func() *blobBuilder {
		b := newBlobBuilder()
		intName := b.str("int")
		fooName := b.str("foo")
		xName := b.str("x")
		b.typeHeader(intName, 0, uint8(KindInt), false, 4)
		b.u32(uint32(1)<<24 | uint32(0)<<16 | uint32(32))
		b.typeHeader(fooName, 1, uint8(KindStruct), false, 4)
		b.u32(xName)
		b.u32(1)
		b.u32(0)
		return b
	}

	le, err := Decode(reader.NewBufReader(bytes.NewReader(build().build())))
	assert.NilError(t, err)
	be, err := Decode(reader.NewBufReader(bytes.NewReader(build().buildBigEndian())))
	assert.NilError(t, err)

	assert.Equal(t, le.Header.LittleEndian, true)
	assert.Equal(t, be.Header.LittleEndian, false)
	assert.DeepEqual(t, catalogSummary(le), catalogSummary(be))
}

func TestByIDOutOfRange(t *testing.T) {
	b := newBlobBuilder()
	blob := b.build()
	cat, err := Decode(reader.NewBufReader(bytes.NewReader(blob)))
	assert.NilError(t, err)
	_, ok := cat.ByID(0)
	assert.Assert(t, !ok)
	_, ok = cat.ByID(99)
	assert.Assert(t, !ok)
}
