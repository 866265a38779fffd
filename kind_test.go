package btf

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestKindStringKnownValues(t *testing.T) {
	assert.Equal(t, KindStruct.String(), "STRUCT")
	assert.Equal(t, KindFuncProto.String(), "FUNC_PROTO")
	assert.Equal(t, Kind(99).String(), "INVALID")
}

func TestKindSupported(t *testing.T) {
	assert.Assert(t, KindInt.supported())
	assert.Assert(t, KindFuncProto.supported())
	assert.Assert(t, !KindRestrict.supported())
	assert.Assert(t, !Kind(20).supported())
}
