package txscript

import (
	"bytes"
	"testing"
)

func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
	}{
		{name: "empty", data: nil, expected: []byte{Op0}},
		{name: "single byte stays data", data: []byte{0x05}, expected: []byte{0x01, 0x05}},
		{
			name:     "75 bytes",
			data:     bytes.Repeat([]byte{0x49}, 75),
			expected: append([]byte{OpData75}, bytes.Repeat([]byte{0x49}, 75)...),
		},
		{
			name:     "76 bytes",
			data:     bytes.Repeat([]byte{0x49}, 76),
			expected: append([]byte{OpPushData1, 76}, bytes.Repeat([]byte{0x49}, 76)...),
		},
		{
			name:     "256 bytes",
			data:     bytes.Repeat([]byte{0x49}, 256),
			expected: append([]byte{OpPushData2, 0x00, 0x01}, bytes.Repeat([]byte{0x49}, 256)...),
		},
	}

	for _, test := range tests {
		script, err := NewScriptBuilder().AddData(test.data).Script()
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		if !bytes.Equal(script, test.expected) {
			t.Errorf("%s: unexpected script\ngot: %x\nwant: %x", test.name, script, test.expected)
		}

		pushes, err := NewPushStack(script).StackArray()
		if err != nil {
			t.Errorf("%s: StackArray: %s", test.name, err)
			continue
		}
		if len(test.data) == 0 {
			if len(pushes) != 0 {
				t.Errorf("%s: expected the empty push to be skipped", test.name)
			}
			continue
		}
		if len(pushes) != 1 || !bytes.Equal(pushes[0], test.data) {
			t.Errorf("%s: pushed data did not round trip", test.name)
		}
	}
}

func TestScriptBuilderTooLarge(t *testing.T) {
	_, err := NewScriptBuilder().AddData(make([]byte, MaxScriptElementSize+1)).AddOp(OpReturn).Script()
	if err == nil {
		t.Fatal("expected an error for an oversized push")
	}
}

func TestEmppScript(t *testing.T) {
	script, err := EmppScript([]byte("DNID\x00"), []byte("DNVT\x00"))
	if err != nil {
		t.Fatalf("EmppScript: %s", err)
	}
	expected := hexToBytes("6a5005444e49440005444e565400")
	if !bytes.Equal(script, expected) {
		t.Fatalf("unexpected script\ngot: %x\nwant: %x", script, expected)
	}

	_, err = EmppScript()
	if err == nil {
		t.Fatal("expected an error for a script without sections")
	}
	_, err = EmppScript([]byte{})
	if err == nil {
		t.Fatal("expected an error for an empty section")
	}
}
