// Package xdr provides little-endian binary encoding and decoding utilities
// for reading and writing bitgrain stream data.
//
// The bitgrain wire format uses little-endian byte order for every
// multi-byte field throughout the file. This package provides efficient,
// bounds-checked readers and a capacity-tracking writer for the primitive
// types used in the header, per-block records, and trailer chunks.
package xdr

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrShortBuffer is returned when a read operation cannot complete
	// because there isn't enough remaining data in the buffer.
	ErrShortBuffer = errors.New("xdr: buffer too short")

	// ErrNegativeSize is returned when a size parameter is negative.
	ErrNegativeSize = errors.New("xdr: negative size")
)

// ByteOrder is the byte order used throughout the bitgrain format.
var ByteOrder = binary.LittleEndian

// Reader provides efficient little-endian binary reading from a byte slice.
// It maintains a read position and bounds-checks every operation so that a
// truncated stream never causes an out-of-range slice access.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if r.pos+n > len(r.data) {
		return ErrShortBuffer
	}
	r.pos += n
	return nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, ErrShortBuffer
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadInt16 reads a signed 16-bit integer in little-endian order.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint16 reads an unsigned 16-bit integer in little-endian order.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, ErrShortBuffer
	}
	v := ByteOrder.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadUint32 reads an unsigned 32-bit integer in little-endian order.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, ErrShortBuffer
	}
	v := ByteOrder.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadBytes reads n bytes and returns a slice of the underlying buffer
// without copying. Callers must not mutate or retain it past the next use
// of r unless they copy it first.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if r.pos+n > len(r.data) {
		return nil, ErrShortBuffer
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// CapacityWriter is a little-endian writer over a fixed-capacity byte slice
// that implements truncate-but-advance semantics: every Write* call moves
// the logical cursor forward by the field's full width even once the
// backing slice is exhausted, but never writes past the end of it. This
// lets an encoder run a single pass, report how many bytes the stream
// would have occupied, and let the caller detect an undersized buffer from
// the returned length instead of pre-flighting a dry run.
type CapacityWriter struct {
	data []byte
	pos  int
}

// NewCapacityWriter creates a CapacityWriter over data. data may be
// shorter than the eventual stream; writes beyond its length are counted
// but discarded.
func NewCapacityWriter(data []byte) *CapacityWriter {
	return &CapacityWriter{data: data}
}

// Pos returns the logical write position, which may exceed len(data).
func (w *CapacityWriter) Pos() int {
	return w.pos
}

// Truncated reports whether any bytes written so far were dropped because
// the backing slice was too small.
func (w *CapacityWriter) Truncated() bool {
	return w.pos > len(w.data)
}

func (w *CapacityWriter) put(b []byte) {
	if w.pos < len(w.data) {
		copy(w.data[w.pos:], b)
	}
	w.pos += len(b)
}

// WriteByte writes a single byte.
func (w *CapacityWriter) WriteByte(b byte) {
	w.put([]byte{b})
}

// WriteBytes writes a byte slice verbatim.
func (w *CapacityWriter) WriteBytes(b []byte) {
	w.put(b)
}

// WriteUint16 writes an unsigned 16-bit integer in little-endian order.
func (w *CapacityWriter) WriteUint16(v uint16) {
	var buf [2]byte
	ByteOrder.PutUint16(buf[:], v)
	w.put(buf[:])
}

// WriteInt16 writes a signed 16-bit integer in little-endian order.
func (w *CapacityWriter) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteUint32 writes an unsigned 32-bit integer in little-endian order.
func (w *CapacityWriter) WriteUint32(v uint32) {
	var buf [4]byte
	ByteOrder.PutUint32(buf[:], v)
	w.put(buf[:])
}
