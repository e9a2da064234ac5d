package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free
// list to use for binary serialization and deserialization.
const maxItems = 1024

// MaxUint48 is the largest value that fits in the 6-byte amount encoding.
const MaxUint48 = 1<<48 - 1

// ErrUint48Overflow is returned by PutUint48 for values above MaxUint48.
var ErrUint48Overflow = errors.New("value does not fit in 48 bits")

// Borrow returns a byte slice from the free list with a length of 8. A new
// buffer is allocated if there are not any available on the free list.
func Borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// Return puts the provided byte slice back on the free list. The buffer MUST
// have been obtained via the Borrow function and therefore have a cap of 8.
func Return(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

func readFull(r io.Reader, size int) ([]byte, error) {
	buf := Borrow()[:size]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return nil, errors.WithStack(err)
	}
	return buf, nil
}

// Uint8 reads a single byte from the provided reader.
func Uint8(r io.Reader) (uint8, error) {
	buf, err := readFull(r, 1)
	if err != nil {
		return 0, err
	}
	rv := buf[0]
	Return(buf)
	return rv, nil
}

// Uint16 reads two little-endian bytes from the provided reader.
func Uint16(r io.Reader) (uint16, error) {
	buf, err := readFull(r, 2)
	if err != nil {
		return 0, err
	}
	rv := binary.LittleEndian.Uint16(buf)
	Return(buf)
	return rv, nil
}

// Uint32 reads four little-endian bytes from the provided reader.
func Uint32(r io.Reader) (uint32, error) {
	buf, err := readFull(r, 4)
	if err != nil {
		return 0, err
	}
	rv := binary.LittleEndian.Uint32(buf)
	Return(buf)
	return rv, nil
}

// Uint48 reads a 48-bit amount laid out as a little-endian uint32 low word
// followed by a little-endian uint16 high word.
func Uint48(r io.Reader) (uint64, error) {
	low, err := Uint32(r)
	if err != nil {
		return 0, err
	}
	high, err := Uint16(r)
	if err != nil {
		return 0, err
	}
	return uint64(high)<<32 | uint64(low), nil
}

// PutUint8 writes a single byte to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	buf := Borrow()[:1]
	buf[0] = val
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}

// PutUint16 writes val to w as two little-endian bytes.
func PutUint16(w io.Writer, val uint16) error {
	buf := Borrow()[:2]
	binary.LittleEndian.PutUint16(buf, val)
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}

// PutUint32 writes val to w as four little-endian bytes.
func PutUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint48 writes val to w as a little-endian uint32 low word followed by
// a little-endian uint16 high word. Values above MaxUint48 are rejected
// rather than truncated.
func PutUint48(w io.Writer, val uint64) error {
	if val > MaxUint48 {
		return errors.Wrapf(ErrUint48Overflow, "value %d", val)
	}
	err := PutUint32(w, uint32(val&0xffffffff))
	if err != nil {
		return err
	}
	return PutUint16(w, uint16(val>>32))
}

// binaryFreeList provides a free list of buffers to use for serializing and
// deserializing primitive integer values to and from io.Readers and io.Writers.
//
// It defines a concurrent safe free list of byte slices (up to the
// maximum number defined by the maxItems constant) that have a
// cap of 8. Section parsers running in parallel share it.
var binaryFreeList = make(chan []byte, maxItems)
