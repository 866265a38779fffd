// Package btf decodes a BPF Type Format (BTF) binary blob — the
// kernel's compact debug-info encoding used by eBPF tooling — into an
// in-memory, ordered catalog of typed entries: integers, pointers,
// const/volatile qualifiers, arrays, typedefs, enumerations, function
// prototypes, structures, unions, forward declarations, and function
// symbols.
//
// The entry point is Open, which reads a file from disk, detects its
// endianness, and walks its type section to completion or to the
// first encoding error. Decoding a blob is single-threaded and
// synchronous; a returned Catalog is immutable and safe to share
// across goroutines for reading.
//
// Writing BTF, relocating or linking it across compilation units, and
// decoding DATASEC/VAR/FLOAT/DECL_TAG/TYPE_TAG/ENUM64 are out of
// scope — see Kind for the supported set.
package btf
