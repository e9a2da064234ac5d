package identity

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/pkg/errors"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error. It must only be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const testHandleID = "2f1b1a3d93b17e58d9c4c5d2e0a3b1f8c7f5d6e4a2b0c9e8d7f6a5b4c3d2e1f0"

func TestIDGenesisVector(t *testing.T) {
	section, err := IDGenesis(0, &model.GenesisInfo{
		Name:      "test-id",
		Namespace: "lixi",
		Type:      model.IdentityTypeProfile,
	})
	if err != nil {
		t.Fatalf("IDGenesis: %s", err)
	}
	expected := hexToBytes("444e4944" + "00" + "0747454e45534953" + "00" + "046c697869" + "07746573742d6964" + "00")
	if !bytes.Equal(section, expected) {
		t.Fatalf("unexpected section\ngot:  %x\nwant: %x", section, expected)
	}
}

func TestIDGenesisAuthPubkey(t *testing.T) {
	authPubkey := "02" + strings.Repeat("ab", 32)
	section, err := IDGenesis(0, &model.GenesisInfo{
		Name:       "page",
		Namespace:  "lixi",
		Type:       model.IdentityTypePage,
		AuthPubkey: authPubkey,
	})
	if err != nil {
		t.Fatalf("IDGenesis: %s", err)
	}
	suffix := append([]byte{33}, hexToBytes(authPubkey)...)
	if !bytes.HasSuffix(section, suffix) {
		t.Fatalf("section %x does not end with the authPubkey varbytes", section)
	}
	if section[13] != byte(model.IdentityTypePage) {
		t.Fatalf("expected type byte %d at offset 13, got %d", model.IdentityTypePage, section[13])
	}
}

func TestIDGenesisAuthPubkeyCase(t *testing.T) {
	lower := "03" + strings.Repeat("c0de", 16)
	info := &model.GenesisInfo{
		Name:       "page",
		Namespace:  "lixi",
		Type:       model.IdentityTypePage,
		AuthPubkey: strings.ToUpper(lower),
	}
	upperSection, err := IDGenesis(0, info)
	if err != nil {
		t.Fatalf("IDGenesis(upper): %s", err)
	}
	if info.AuthPubkey != strings.ToUpper(lower) {
		t.Fatalf("IDGenesis modified its input: %s", info.AuthPubkey)
	}
	info.AuthPubkey = lower
	lowerSection, err := IDGenesis(0, info)
	if err != nil {
		t.Fatalf("IDGenesis(lower): %s", err)
	}
	if !bytes.Equal(upperSection, lowerSection) {
		t.Fatalf("letter case changed the encoding\nupper: %x\nlower: %x", upperSection, lowerSection)
	}

	section, err := ParseSection(upperSection[registry.LokadIDSize:])
	if err != nil {
		t.Fatalf("ParseSection: %s", err)
	}
	danaID, ok := section.Data.(*model.DanaID)
	if !ok {
		t.Fatalf("unexpected section data %T", section.Data)
	}
	if danaID.AuthPubkey != lower {
		t.Fatalf("expected decoded authPubkey %s, got %s", lower, danaID.AuthPubkey)
	}
}

func TestIDGenesisErrors(t *testing.T) {
	t.Parallel()

	valid := func() *model.GenesisInfo {
		return &model.GenesisInfo{Name: "test-id", Namespace: "lixi", Type: model.IdentityTypeProfile}
	}

	tests := []struct {
		name        string
		version     int
		modify      func(info *model.GenesisInfo)
		expectedErr error
	}{
		{
			name:        "32 byte name",
			modify:      func(info *model.GenesisInfo) { info.Name = strings.Repeat("n", 32) },
			expectedErr: nil,
		},
		{
			name:        "33 byte name",
			modify:      func(info *model.GenesisInfo) { info.Name = strings.Repeat("n", 33) },
			expectedErr: ruleerrors.ErrName,
		},
		{
			name:        "empty name",
			modify:      func(info *model.GenesisInfo) { info.Name = "" },
			expectedErr: ruleerrors.ErrName,
		},
		{
			name:        "32 byte namespace",
			modify:      func(info *model.GenesisInfo) { info.Namespace = strings.Repeat("s", 32) },
			expectedErr: nil,
		},
		{
			name:        "33 byte namespace",
			modify:      func(info *model.GenesisInfo) { info.Namespace = strings.Repeat("s", 33) },
			expectedErr: ruleerrors.ErrNamespace,
		},
		{
			name:        "empty namespace",
			modify:      func(info *model.GenesisInfo) { info.Namespace = "" },
			expectedErr: ruleerrors.ErrNamespace,
		},
		{
			name:        "name is not UTF-8",
			modify:      func(info *model.GenesisInfo) { info.Name = "\xff\xfe" },
			expectedErr: ruleerrors.ErrName,
		},
		{
			name:        "invalid type",
			modify:      func(info *model.GenesisInfo) { info.Type = 2 },
			expectedErr: ruleerrors.ErrUnsupportedType,
		},
		{
			name:        "authPubkey is not hex",
			modify:      func(info *model.GenesisInfo) { info.AuthPubkey = "zz" },
			expectedErr: ruleerrors.ErrInvalidHex,
		},
		{
			name:        "authPubkey longer than 127 bytes",
			modify:      func(info *model.GenesisInfo) { info.AuthPubkey = strings.Repeat("00", 128) },
			expectedErr: ruleerrors.ErrLength,
		},
		{
			name:        "version 255",
			version:     255,
			modify:      func(info *model.GenesisInfo) {},
			expectedErr: nil,
		},
		{
			name:        "version 256",
			version:     256,
			modify:      func(info *model.GenesisInfo) {},
			expectedErr: ruleerrors.ErrUnsupportedVersion,
		},
		{
			name:        "negative version",
			version:     -1,
			modify:      func(info *model.GenesisInfo) {},
			expectedErr: ruleerrors.ErrUnsupportedVersion,
		},
	}

	for _, test := range tests {
		info := valid()
		test.modify(info)
		_, err := IDGenesis(test.version, info)
		if test.expectedErr == nil {
			if err != nil {
				t.Errorf("%s: unexpected error: %s", test.name, err)
			}
			continue
		}
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("%s: expected %v, got: %v", test.name, test.expectedErr, err)
		}
	}
}

func TestIDSendAndBurn(t *testing.T) {
	id, err := model.NewIdentifierFromString(testHandleID)
	if err != nil {
		t.Fatal(err)
	}
	wire := id.WireBytes()
	if wire[0] != 0xf0 || wire[31] != 0x2f {
		t.Fatalf("identifier is not reversed on the wire: %x", wire)
	}

	send, err := IDSend(0, testHandleID, 3)
	if err != nil {
		t.Fatalf("IDSend: %s", err)
	}
	expectedSend := append(hexToBytes("444e49440004"+hex.EncodeToString([]byte("SEND"))), wire...)
	expectedSend = append(expectedSend, 3)
	if !bytes.Equal(send, expectedSend) {
		t.Fatalf("unexpected SEND section\ngot:  %x\nwant: %x", send, expectedSend)
	}
	if !bytes.Equal(send[10:42], wire) {
		t.Fatalf("expected the reversed id at offset 10")
	}

	burn, err := IDBurn(0, testHandleID)
	if err != nil {
		t.Fatalf("IDBurn: %s", err)
	}
	expectedBurn := append(hexToBytes("444e49440004"+hex.EncodeToString([]byte("BURN"))), wire...)
	if !bytes.Equal(burn, expectedBurn) {
		t.Fatalf("unexpected BURN section\ngot:  %x\nwant: %x", burn, expectedBurn)
	}
}

func TestIDSendAndBurnErrors(t *testing.T) {
	_, err := IDSend(0, testHandleID[:62], 0)
	if !errors.Is(err, ruleerrors.ErrHashLength) {
		t.Errorf("short id: expected ErrHashLength, got %v", err)
	}
	_, err = IDSend(0, "zz"+testHandleID[2:], 0)
	if !errors.Is(err, ruleerrors.ErrInvalidHex) {
		t.Errorf("non hex id: expected ErrInvalidHex, got %v", err)
	}
	_, err = IDSend(300, testHandleID, 0)
	if !errors.Is(err, ruleerrors.ErrUnsupportedVersion) {
		t.Errorf("version 300: expected ErrUnsupportedVersion, got %v", err)
	}
	_, err = IDBurn(0, testHandleID+"00")
	if !errors.Is(err, ruleerrors.ErrHashLength) {
		t.Errorf("long id: expected ErrHashLength, got %v", err)
	}
}
