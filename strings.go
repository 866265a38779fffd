package btf

import (
	"github.com/laenix/btfgo/internal/bitpack"
	"github.com/laenix/btfgo/internal/names"
	"github.com/laenix/btfgo/reader"
)

// stringResolver is the String Resolver spec.md §4.3/§5/§9 describes:
// it holds no bytes of its own. Resolving a name_off is a side
// excursion of the shared reader's cursor — snapshot the current
// offset, seek to the string section, read the NUL-terminated run,
// then restore the snapshot — so the type-section driver's own
// forward-reading position is left exactly as it found it (testable
// property 2: cursor neutrality of name resolution). This mirrors the
// defer-based scoped-seek discipline the teacher's ewf.go used around
// sector reads, now applied to the reader's own cursor instead of a
// separate file handle.
type stringResolver struct {
	r      reader.ByteReader
	base   int64
	length int64
}

// newStringResolver records where the string section lives (spec.md
// §4.4: hdr.StrOff is relative to the end of the header) without
// reading any of it. No I/O happens until the first at() call.
func newStringResolver(r reader.ByteReader, hdr *Header) *stringResolver {
	return &stringResolver{
		r:      r,
		base:   int64(hdr.HdrLen) + int64(hdr.StrOff),
		length: int64(hdr.StrLen),
	}
}

// at resolves the NUL-terminated string beginning at off, leaving the
// reader's cursor exactly where it found it. An out-of-range offset,
// or any read failure during the excursion, yields an empty string
// rather than propagating an error — the per-kind decoders are
// responsible for validating name_off against the rules spec.md §4.6
// actually specifies; this is the resolver's own defensive boundary,
// not a decoder-visible failure.
func (t *stringResolver) at(off uint32) string {
	if int64(off) >= t.length {
		return ""
	}

	saved, err := t.r.Offset()
	if err != nil {
		return ""
	}
	defer func() { _ = t.r.Seek(saved) }()

	if err := t.r.Seek(t.base + int64(off)); err != nil {
		return ""
	}

	var buf []byte
	for int64(len(buf)) < t.length {
		b, err := t.r.U8()
		if err != nil {
			return ""
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return names.Sanitize(string(buf))
}

// stringSectionRange reports the byte range of the string section,
// for decoders that need to attribute a validation error to it.
func (t *stringResolver) stringSectionRange() bitpack.FileRange {
	return bitpack.FileRange{Offset: t.base, Size: t.length}
}
