package btf

import (
	"github.com/laenix/btfgo/internal/bitpack"
	"github.com/laenix/btfgo/reader"
	"github.com/sirupsen/logrus"
)

// decodeContext bundles the collaborators every per-kind decoder
// needs: the positioned byte reader and the resolved string table.
// It exists so decodeInt/decodePtr/... share one parameter instead of
// each re-deriving the string table from the catalog being built.
type decodeContext struct {
	r    reader.ByteReader
	strs *stringResolver
}

// kindDecoder is the shape every per-kind decoder implements: consume
// whatever trailer bytes that kind defines past the common header,
// and return the fully-populated Entry or a *Error.
type kindDecoder func(ctx *decodeContext, th *typeHeader, typeID int) (Entry, error)

// dispatch is the flat table spec.md §4.5 describes: one decoder per
// supported Kind, indexed directly by the raw kind byte rather than a
// chain of if/else or a type switch over an intermediate struct.
var dispatch = [...]kindDecoder{
	KindInt:       decodeInt,
	KindPtr:       decodePtr,
	KindArray:     decodeArray,
	KindStruct:    decodeStruct,
	KindUnion:     decodeUnion,
	KindEnum:      decodeEnum,
	KindFwd:       decodeFwd,
	KindTypedef:   decodeTypedef,
	KindVolatile:  decodeVolatile,
	KindConst:     decodeConst,
	KindFunc:      decodeFunc,
	KindFuncProto: decodeFuncProto,
}

// Catalog is the decoded, ordered set of type entries produced by one
// BTF blob (spec.md §3). It is immutable once returned by Open/Decode
// and safe for concurrent reads.
type Catalog struct {
	Header  *Header
	entries []Entry
}

// Entries returns every decoded entry in type-ID order (type ID 1
// first; there is no entry for the implicit, unnamed type ID 0).
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// ByID looks up an entry by its type ID. Type ID 0 and any ID beyond
// the decoded set report ok=false rather than panicking, since a
// referenced type ID is attacker-controlled input, not a programming
// invariant (spec.md's Non-goals exclude cross-reference validation —
// a dangling reference is only discovered, never rejected, by this
// decoder).
func (c *Catalog) ByID(id int) (Entry, bool) {
	if id <= 0 || id > len(c.entries) {
		return nil, false
	}
	return c.entries[id-1], true
}

// Open reads and decodes the BTF blob at path. It is the package's
// single entry point (doc.go).
func Open(path string) (*Catalog, error) {
	log := logrus.WithField("component", "btf")
	log.WithField("path", path).Debug("opening btf blob")

	fr, err := reader.Open(path)
	if err != nil {
		log.WithError(err).Warn("failed to open btf blob")
		return nil, mapReadError(err)
	}
	defer fr.Close()

	cat, err := Decode(fr)
	if err != nil {
		log.WithError(err).Warn("failed to decode btf blob")
		return nil, err
	}
	log.WithField("types", len(cat.entries)).Debug("decoded btf blob")
	return cat, nil
}

// Decode decodes a BTF blob from any ByteReader-compatible source.
// Open wraps this around an on-disk file; tests construct a BufReader
// directly over a synthetic in-memory blob.
func Decode(r reader.ByteReader) (*Catalog, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	strs := newStringResolver(r, hdr)

	typeSecStart := int64(hdr.HdrLen) + int64(hdr.TypeOff)
	typeSecEnd := typeSecStart + int64(hdr.TypeLen)
	if err := r.Seek(typeSecStart); err != nil {
		return nil, mapReadError(err)
	}

	ctx := &decodeContext{r: r, strs: strs}
	var entries []Entry
	typeID := 1

	for {
		cur, err := r.Offset()
		if err != nil {
			return nil, mapReadError(err)
		}
		// `current >= end`, not tightened to `==`: a final type whose
		// trailer overruns the section end is still handed to its
		// decoder, which reads the overrun bytes from whatever follows
		// (the string section, or EOF, which fails with an IOError);
		// the overrun itself is not rejected (SPEC_FULL.md §9 Open
		// Question decision).
		if cur >= typeSecEnd {
			break
		}

		th, err := readTypeHeader(r)
		if err != nil {
			return nil, err
		}

		if !Kind(th.kind).supported() {
			return nil, newErrorAt(CodeInvalidBTFKind, bitpack.FileRange{Offset: th.offset, Size: typeHeaderSize})
		}

		entry, err := dispatch[th.kind](ctx, th, typeID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		typeID++
	}

	return &Catalog{Header: hdr, entries: entries}, nil
}

