// Package sectionwriter builds pushdata sections in two passes: the section
// function first runs against a LengthWriter that only counts bytes, then
// against a BytesWriter allocated to exactly that length. The resulting
// slice is never grown.
package sectionwriter

import (
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/util/binaryserializer"
	"github.com/pkg/errors"
)

// MaxVarBytesLength is the largest payload a varbytes field can carry.
const MaxVarBytesLength = 127

// Writer is the sink a section function writes into. Both passes of
// WriteSection hand the same function a different Writer.
type Writer interface {
	Write(p []byte) (int, error)
	PutU8(val uint8) error
	PutU16(val uint16) error
	PutU32(val uint32) error
	PutBytes(data []byte) error
}

// SectionFunc writes one section into w. It must write the same fields in
// the same order every time it is called.
type SectionFunc func(w Writer) error

// LengthWriter counts the bytes written to it without storing them.
type LengthWriter struct {
	length int
}

// Length returns the number of bytes written so far.
func (lw *LengthWriter) Length() int {
	return lw.length
}

func (lw *LengthWriter) Write(p []byte) (int, error) {
	lw.length += len(p)
	return len(p), nil
}

// PutU8 counts a single byte.
func (lw *LengthWriter) PutU8(uint8) error {
	lw.length++
	return nil
}

// PutU16 counts two bytes.
func (lw *LengthWriter) PutU16(uint16) error {
	lw.length += 2
	return nil
}

// PutU32 counts four bytes.
func (lw *LengthWriter) PutU32(uint32) error {
	lw.length += 4
	return nil
}

// PutBytes counts len(data) bytes.
func (lw *LengthWriter) PutBytes(data []byte) error {
	lw.length += len(data)
	return nil
}

// BytesWriter writes into a buffer whose capacity is fixed at construction.
// Writing past that capacity fails with ruleerrors.ErrWriterOverflow.
type BytesWriter struct {
	data []byte
	idx  int
}

// NewBytesWriter returns a BytesWriter that holds exactly length bytes.
func NewBytesWriter(length int) *BytesWriter {
	return &BytesWriter{data: make([]byte, length)}
}

// Data returns the written bytes.
func (bw *BytesWriter) Data() []byte {
	return bw.data[:bw.idx]
}

func (bw *BytesWriter) Write(p []byte) (int, error) {
	if bw.idx+len(p) > len(bw.data) {
		return 0, errors.Wrapf(ruleerrors.ErrWriterOverflow,
			"writing %d bytes at offset %d of a %d byte buffer", len(p), bw.idx, len(bw.data))
	}
	copy(bw.data[bw.idx:], p)
	bw.idx += len(p)
	return len(p), nil
}

// PutU8 writes a single byte.
func (bw *BytesWriter) PutU8(val uint8) error {
	return binaryserializer.PutUint8(bw, val)
}

// PutU16 writes val as two little-endian bytes.
func (bw *BytesWriter) PutU16(val uint16) error {
	return binaryserializer.PutUint16(bw, val)
}

// PutU32 writes val as four little-endian bytes.
func (bw *BytesWriter) PutU32(val uint32) error {
	return binaryserializer.PutUint32(bw, val)
}

// PutBytes writes data as-is.
func (bw *BytesWriter) PutBytes(data []byte) error {
	_, err := bw.Write(data)
	return err
}

// WriteSection runs writeSection against a LengthWriter, then against a
// BytesWriter of the counted length, and returns the materialized bytes.
func WriteSection(writeSection SectionFunc) ([]byte, error) {
	lengthWriter := &LengthWriter{}
	err := writeSection(lengthWriter)
	if err != nil {
		return nil, err
	}

	bytesWriter := NewBytesWriter(lengthWriter.Length())
	err = writeSection(bytesWriter)
	if err != nil {
		return nil, err
	}
	if bytesWriter.idx != len(bytesWriter.data) {
		return nil, errors.Errorf("section length mismatch: counted %d bytes, wrote %d",
			len(bytesWriter.data), bytesWriter.idx)
	}
	return bytesWriter.data, nil
}

// PutVarBytes writes a one byte length followed by data. It fails with
// ruleerrors.ErrLength if data is longer than MaxVarBytesLength.
func PutVarBytes(w Writer, data []byte) error {
	if len(data) > MaxVarBytesLength {
		return errors.Wrapf(ruleerrors.ErrLength,
			"varbytes length is %d, while it should be at most %d", len(data), MaxVarBytesLength)
	}
	err := w.PutU8(uint8(len(data)))
	if err != nil {
		return err
	}
	return w.PutBytes(data)
}

// PutAmount writes a 48-bit amount as a little-endian uint32 low word and a
// little-endian uint16 high word. It fails with ruleerrors.ErrAmountRange if
// amount does not fit in 48 bits.
func PutAmount(w Writer, amount uint64) error {
	if amount > binaryserializer.MaxUint48 {
		return errors.Wrapf(ruleerrors.ErrAmountRange,
			"amount %d is above the maximum of %d", amount, uint64(binaryserializer.MaxUint48))
	}
	return binaryserializer.PutUint48(w, amount)
}
