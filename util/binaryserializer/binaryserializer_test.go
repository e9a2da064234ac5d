package binaryserializer

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestUint48(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []byte
	}{
		{
			name:     "zero",
			value:    0,
			expected: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:     "one million",
			value:    1000000,
			expected: []byte{0x40, 0x42, 0x0f, 0x00, 0x00, 0x00},
		},
		{
			name:     "crosses the low word",
			value:    1 << 32,
			expected: []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00},
		},
		{
			name:     "max",
			value:    MaxUint48,
			expected: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		err := PutUint48(&buf, test.value)
		if err != nil {
			t.Fatalf("%s: PutUint48: %s", test.name, err)
		}
		if !bytes.Equal(buf.Bytes(), test.expected) {
			t.Errorf("%s: unexpected bytes. Want: %x, got: %x", test.name, test.expected, buf.Bytes())
		}

		value, err := Uint48(bytes.NewReader(test.expected))
		if err != nil {
			t.Fatalf("%s: Uint48: %s", test.name, err)
		}
		if value != test.value {
			t.Errorf("%s: unexpected value. Want: %d, got: %d", test.name, test.value, value)
		}
	}
}

func TestPutUint48Overflow(t *testing.T) {
	var buf bytes.Buffer
	err := PutUint48(&buf, MaxUint48+1)
	if !errors.Is(err, ErrUint48Overflow) {
		t.Fatalf("expected ErrUint48Overflow, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing to be written, got %x", buf.Bytes())
	}
}

func TestShortReads(t *testing.T) {
	_, err := Uint8(bytes.NewReader(nil))
	if !errors.Is(err, io.EOF) {
		t.Errorf("Uint8: expected io.EOF, got: %v", err)
	}
	_, err = Uint16(bytes.NewReader([]byte{0x01}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Uint16: expected io.ErrUnexpectedEOF, got: %v", err)
	}
	_, err = Uint48(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Uint48: expected io.ErrUnexpectedEOF, got: %v", err)
	}
}

func TestLittleEndianRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := PutUint8(&buf, 0xab); err != nil {
		t.Fatal(err)
	}
	if err := PutUint16(&buf, 0x1234); err != nil {
		t.Fatal(err)
	}
	if err := PutUint32(&buf, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	expected := []byte{0xab, 0x34, 0x12, 0xef, 0xbe, 0xad, 0xde}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("unexpected bytes. Want: %x, got: %x", expected, buf.Bytes())
	}

	r := bytes.NewReader(buf.Bytes())
	u8, _ := Uint8(r)
	u16, _ := Uint16(r)
	u32, err := Uint32(r)
	if err != nil {
		t.Fatal(err)
	}
	if u8 != 0xab || u16 != 0x1234 || u32 != 0xdeadbeef {
		t.Fatalf("unexpected values: %x %x %x", u8, u16, u32)
	}
}
