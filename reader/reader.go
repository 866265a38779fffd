// Package reader implements the positioned, endianness-aware byte reader
// the BTF decoder consumes. It is the concrete collaborator behind the
// contract described in spec.md §4.1: seek/tell plus typed u8/u16/u32
// reads, with a single typed error raised on EOF or I/O failure.
package reader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Code classifies a read failure the way the upstream byte-reader
// contract does: a small, closed set the decoder's Error Mapper
// translates verbatim.
type Code int

const (
	CodeUnknown Code = iota
	CodeOOM
	CodeFileNotFound
	CodeIOError
)

func (c Code) String() string {
	switch c {
	case CodeOOM:
		return "oom"
	case CodeFileNotFound:
		return "file-not-found"
	case CodeIOError:
		return "io-error"
	default:
		return "unknown"
	}
}

// ReadError is the single error variant the byte reader ever raises.
// Offset/Size describe the failing read when known; HasRange is false
// for failures (like file-open) that have no associated read range.
type ReadError struct {
	Code     Code
	Offset   int64
	Size     int64
	HasRange bool
	Err      error
}

func (e *ReadError) Error() string {
	if e.HasRange {
		return fmt.Sprintf("btf reader: %s at offset %d (%d bytes): %v", e.Code, e.Offset, e.Size, e.Err)
	}
	return fmt.Sprintf("btf reader: %s: %v", e.Code, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func newReadError(code Code, offset, size int64, err error) *ReadError {
	return &ReadError{Code: code, Offset: offset, Size: size, HasRange: true, Err: err}
}

// ByteReader is the contract the decoder is built against (spec.md
// §4.1): a positioned cursor with configurable endianness and typed
// reads. Both FileReader and BufReader implement it.
type ByteReader interface {
	Seek(offset int64) error
	Offset() (int64, error)
	SetLittleEndian(little bool)
	U8() (uint8, error)
	U16() (uint16, error)
	U32() (uint32, error)
}

// BufReader wraps any io.ReadSeeker. It is the reader tests construct
// synthetic blobs against, and is what FileReader delegates to once
// the underlying file is open — the same "treat the handle as one
// seekable cursor" posture centraksw-go-debug/coff takes with
// io.SectionReader, replacing the teacher's EWFImage.ReadAt, which
// reopens the file on every single positioned read.
type BufReader struct {
	rs     io.ReadSeeker
	order  binary.ByteOrder
	offset int64
}

// NewBufReader constructs a ByteReader over an in-memory or otherwise
// already-open seekable stream. Endianness defaults to little-endian;
// callers detecting endianness per spec.md §4.4 call SetLittleEndian
// once the magic has been read.
func NewBufReader(rs io.ReadSeeker) *BufReader {
	return &BufReader{rs: rs, order: binary.LittleEndian}
}

func (r *BufReader) Seek(offset int64) error {
	n, err := r.rs.Seek(offset, io.SeekStart)
	if err != nil {
		return newReadError(CodeIOError, offset, 0, err)
	}
	r.offset = n
	return nil
}

func (r *BufReader) Offset() (int64, error) {
	return r.offset, nil
}

func (r *BufReader) SetLittleEndian(little bool) {
	if little {
		r.order = binary.LittleEndian
	} else {
		r.order = binary.BigEndian
	}
}

func (r *BufReader) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	start := r.offset
	read, err := io.ReadFull(r.rs, buf)
	r.offset += int64(read)
	if err != nil {
		code := CodeIOError
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			code = CodeIOError
		}
		return nil, newReadError(code, start, int64(n), err)
	}
	return buf, nil
}

func (r *BufReader) U8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *BufReader) U16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r *BufReader) U32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// FileReader is a ByteReader backed by an on-disk file, acquired once
// at Open and released on Close — the resource-scoping discipline
// spec.md §5 requires of the reader's underlying file handle.
type FileReader struct {
	f   *os.File
	buf *BufReader
}

// Open acquires the file at path and returns a ByteReader over it,
// mapping the open failure into the decoder's read-error taxonomy
// (FileNotFound vs generic IOError) the way the Error Mapper expects
// every reader failure to arrive already classified.
func Open(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		code := CodeIOError
		if os.IsNotExist(err) {
			code = CodeFileNotFound
		}
		return nil, &ReadError{Code: code, Err: err}
	}
	return &FileReader{f: f, buf: NewBufReader(f)}, nil
}

func (r *FileReader) Seek(offset int64) error     { return r.buf.Seek(offset) }
func (r *FileReader) Offset() (int64, error)      { return r.buf.Offset() }
func (r *FileReader) SetLittleEndian(little bool) { r.buf.SetLittleEndian(little) }
func (r *FileReader) U8() (uint8, error)           { return r.buf.U8() }
func (r *FileReader) U16() (uint16, error)         { return r.buf.U16() }
func (r *FileReader) U32() (uint32, error)         { return r.buf.U32() }


// Close releases the underlying file handle. Safe to call once
// decoding has finished, normally or abnormally.
func (r *FileReader) Close() error {
	return r.f.Close()
}

var _ ByteReader = (*BufReader)(nil)
var _ ByteReader = (*FileReader)(nil)
