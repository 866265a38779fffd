package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/laenix/btfgo"
	"gotest.tools/v3/assert"
)

// minimalBlob builds the smallest valid BTF blob: a header with no
// types and no strings, enough to exercise the dump command's render
// paths without depending on the root package's unexported test
// helpers.
func minimalBlob() []byte {
	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, uint16(0xeB9F))
	out.WriteByte(1)
	out.WriteByte(0)
	binary.Write(&out, binary.LittleEndian, uint32(24))
	binary.Write(&out, binary.LittleEndian, uint32(0))
	binary.Write(&out, binary.LittleEndian, uint32(0))
	binary.Write(&out, binary.LittleEndian, uint32(0))
	binary.Write(&out, binary.LittleEndian, uint32(0))
	return out.Bytes()
}

func TestDumpTextAndJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "blob-*.btf")
	assert.NilError(t, err)
	_, err = f.Write(minimalBlob())
	assert.NilError(t, err)
	assert.NilError(t, f.Close())

	cat, err := btf.Open(f.Name())
	assert.NilError(t, err)

	assert.NilError(t, dumpText(cat))
	assert.NilError(t, dumpJSON(cat))
}
