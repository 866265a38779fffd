package btf

import (
	"errors"
	"fmt"

	"github.com/laenix/btfgo/internal/bitpack"
	"github.com/laenix/btfgo/reader"
)

// Code is the decoder's closed error taxonomy (spec.md §7).
type Code int

const (
	CodeUnknown Code = iota
	CodeMemoryAllocationFailure
	CodeFileNotFound
	CodeIOError
	CodeInvalidMagicValue
	CodeInvalidBTFKind
	CodeInvalidIntBTFTypeEncoding
	CodeInvalidPtrBTFTypeEncoding
	CodeInvalidArrayBTFTypeEncoding
	CodeInvalidTypedefBTFTypeEncoding
	CodeInvalidEnumBTFTypeEncoding
	CodeInvalidFuncProtoBTFTypeEncoding
	CodeInvalidVolatileBTFTypeEncoding
	CodeInvalidConstBTFTypeEncoding
	CodeInvalidFwdBTFTypeEncoding
	CodeInvalidFuncBTFTypeEncoding
	// CodeInvalidAggregateBTFTypeEncoding covers Struct and Union
	// member-list violations. spec.md §7 enumerates a code per kind
	// but has no separate Struct/Union entries since the two share one
	// decoder (spec.md §4.6) — this code is this decoder's addition,
	// documented in DESIGN.md, rather than a literal spec.md §7 name.
	CodeInvalidAggregateBTFTypeEncoding
)

func (c Code) String() string {
	switch c {
	case CodeMemoryAllocationFailure:
		return "MemoryAllocationFailure"
	case CodeFileNotFound:
		return "FileNotFound"
	case CodeIOError:
		return "IOError"
	case CodeInvalidMagicValue:
		return "InvalidMagicValue"
	case CodeInvalidBTFKind:
		return "InvalidBTFKind"
	case CodeInvalidIntBTFTypeEncoding:
		return "InvalidIntBTFTypeEncoding"
	case CodeInvalidPtrBTFTypeEncoding:
		return "InvalidPtrBTFTypeEncoding"
	case CodeInvalidArrayBTFTypeEncoding:
		return "InvalidArrayBTFTypeEncoding"
	case CodeInvalidTypedefBTFTypeEncoding:
		return "InvalidTypedefBTFTypeEncoding"
	case CodeInvalidEnumBTFTypeEncoding:
		return "InvalidEnumBTFTypeEncoding"
	case CodeInvalidFuncProtoBTFTypeEncoding:
		return "InvalidFuncProtoBTFTypeEncoding"
	case CodeInvalidVolatileBTFTypeEncoding:
		return "InvalidVolatileBTFTypeEncoding"
	case CodeInvalidConstBTFTypeEncoding:
		return "InvalidConstBTFTypeEncoding"
	case CodeInvalidFwdBTFTypeEncoding:
		return "InvalidFwdBTFTypeEncoding"
	case CodeInvalidFuncBTFTypeEncoding:
		return "InvalidFuncBTFTypeEncoding"
	case CodeInvalidAggregateBTFTypeEncoding:
		return "InvalidAggregateBTFTypeEncoding"
	default:
		return "Unknown"
	}
}

// FileRange is the optional byte offset/size an Error is attributed
// to: the just-consumed type header, plus whatever trailer bytes the
// violated rule needed to discover the violation.
type FileRange struct {
	Offset int64
	Size   int64
}

// Error is the decoder's single error type (spec.md §7): a code plus
// an optional file range. It is never swallowed and never partially
// populated — the first Error aborts decoding.
type Error struct {
	Code  Code
	Range *FileRange
	cause error
}

func (e *Error) Error() string {
	if e.Range != nil {
		return fmt.Sprintf("btf: %s at offset %d (%d bytes)", e.Code, e.Range.Offset, e.Range.Size)
	}
	return fmt.Sprintf("btf: %s", e.Code)
}

func (e *Error) Unwrap() error { return e.cause }

func newError(code Code) *Error {
	return &Error{Code: code}
}

func newErrorAt(code Code, rng bitpack.FileRange) *Error {
	return &Error{Code: code, Range: &FileRange{Offset: rng.Offset, Size: rng.Size}}
}

// mapReadError is the Error Mapper (spec.md §4.2): a pure function
// translating a reader.ReadError into the decoder's own taxonomy,
// copying the code and range verbatim. It performs no I/O itself.
func mapReadError(err error) *Error {
	var rerr *reader.ReadError
	if errors.As(err, &rerr) {
		e := &Error{cause: rerr}
		switch rerr.Code {
		case reader.CodeOOM:
			e.Code = CodeMemoryAllocationFailure
		case reader.CodeFileNotFound:
			e.Code = CodeFileNotFound
		case reader.CodeIOError:
			e.Code = CodeIOError
		default:
			e.Code = CodeUnknown
		}
		if rerr.HasRange {
			e.Range = &FileRange{Offset: rerr.Offset, Size: rerr.Size}
		}
		return e
	}
	return &Error{Code: CodeUnknown, cause: err}
}

// getImplementer walks err's wrap/join chain looking for a *Error,
// the same shape moby-moby/errdefs.getImplementer uses to classify
// wrapped errors without string matching.
func getImplementer(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsInvalidMagic reports whether err (or anything it wraps) is an
// InvalidMagicValue error.
func IsInvalidMagic(err error) bool {
	e := getImplementer(err)
	return e != nil && e.Code == CodeInvalidMagicValue
}

// IsInvalidKind reports whether err (or anything it wraps) is an
// InvalidBTFKind error.
func IsInvalidKind(err error) bool {
	e := getImplementer(err)
	return e != nil && e.Code == CodeInvalidBTFKind
}

// IsEncodingError reports whether err is any of the per-kind
// "Invalid...Encoding" errors.
func IsEncodingError(err error) bool {
	e := getImplementer(err)
	if e == nil {
		return false
	}
	switch e.Code {
	case CodeInvalidIntBTFTypeEncoding, CodeInvalidPtrBTFTypeEncoding, CodeInvalidArrayBTFTypeEncoding,
		CodeInvalidTypedefBTFTypeEncoding, CodeInvalidEnumBTFTypeEncoding, CodeInvalidFuncProtoBTFTypeEncoding,
		CodeInvalidVolatileBTFTypeEncoding, CodeInvalidConstBTFTypeEncoding, CodeInvalidFwdBTFTypeEncoding,
		CodeInvalidFuncBTFTypeEncoding, CodeInvalidAggregateBTFTypeEncoding:
		return true
	default:
		return false
	}
}

// IsIOError reports whether err is a FileNotFound or IOError failure
// propagated from the byte reader.
func IsIOError(err error) bool {
	e := getImplementer(err)
	return e != nil && (e.Code == CodeFileNotFound || e.Code == CodeIOError)
}
