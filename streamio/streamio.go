// Package streamio provides a small positional byte reader and writer used
// by binary codecs (notably the dbar package) that need bit-exact reads
// with byte-offset tracking for structured error reporting.
//
// It is modeled on the teacher's storage.Reader pattern: a thin wrapper
// around an io.Reader that types know how to read themselves from,
// maintaining a running absolute byte offset so callers can report
// exactly where a malformed stream stopped making sense.
package streamio

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader wraps an io.Reader, tracking the number of bytes consumed so far.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader wraps r for positional reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Pos returns the number of bytes successfully consumed so far.
func (r *Reader) Pos() int64 { return r.pos }

// ReadFull reads exactly len(p) bytes into p, advancing Pos by the number
// of bytes actually read even on a short read or error — callers that need
// to inspect a partial read (e.g. to build a partly-valid record) can do so
// via the returned n.
func (r *Reader) ReadFull(p []byte) (n int, err error) {
	n, err = io.ReadFull(r.r, p)
	r.pos += int64(n)
	return n, err
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	var buf [1]byte
	if _, err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint32LE reads a little-endian 32-bit unsigned integer.
func (r *Reader) ReadUint32LE() (uint32, error) {
	var buf [4]byte
	if _, err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Writer wraps an io.Writer, tracking the number of bytes written so far.
type Writer struct {
	w   io.Writer
	pos int64
}

// NewWriter wraps w for positional writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 { return w.pos }

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	n, err := w.w.Write([]byte{v})
	w.pos += int64(n)
	return errors.Wrap(err, "streamio: write byte")
}

// WriteUint32LE writes a little-endian 32-bit unsigned integer.
func (w *Writer) WriteUint32LE(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	n, err := w.w.Write(buf[:])
	w.pos += int64(n)
	return errors.Wrap(err, "streamio: write uint32")
}
