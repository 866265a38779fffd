package btf

import (
	"testing"

	"github.com/laenix/btfgo/internal/bitpack"
	"github.com/laenix/btfgo/reader"
	"gotest.tools/v3/assert"
)

func TestMapReadErrorClassifies(t *testing.T) {
	cases := []struct {
		name string
		in   reader.Code
		want Code
	}{
		{"oom", reader.CodeOOM, CodeMemoryAllocationFailure},
		{"not-found", reader.CodeFileNotFound, CodeFileNotFound},
		{"io", reader.CodeIOError, CodeIOError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			re := &reader.ReadError{Code: c.in, HasRange: true, Offset: 10, Size: 4}
			got := mapReadError(re)
			assert.Equal(t, got.Code, c.want)
			assert.Assert(t, got.Range != nil)
			assert.Equal(t, got.Range.Offset, int64(10))
		})
	}
}

func TestIsEncodingErrorClassifiesPerKindCodes(t *testing.T) {
	e := newError(CodeInvalidIntBTFTypeEncoding)
	assert.Assert(t, IsEncodingError(e))
	assert.Assert(t, !IsInvalidMagic(e))
	assert.Assert(t, !IsIOError(e))
}

func TestIsIOErrorClassifiesReaderFailures(t *testing.T) {
	e := mapReadError(&reader.ReadError{Code: reader.CodeIOError})
	assert.Assert(t, IsIOError(e))
	assert.Assert(t, !IsEncodingError(e))
}

func TestErrorStringIncludesRange(t *testing.T) {
	e := newErrorAt(CodeInvalidBTFKind, bitpack.FileRange{Offset: 12, Size: 12})
	assert.Equal(t, e.Error(), "btf: InvalidBTFKind at offset 12 (12 bytes)")
}
