package names

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestSanitizeValidUTF8Unchanged(t *testing.T) {
	assert.Equal(t, Sanitize("my_struct_t"), "my_struct_t")
	assert.Equal(t, Sanitize(""), "")
}

func TestSanitizeStripsInvalidBytes(t *testing.T) {
	invalid := string([]byte{'o', 'k', 0xff, 0xfe, '_', 't'})
	got := Sanitize(invalid)
	assert.Equal(t, got, "ok_t")
}
