package registry

import (
	"encoding/hex"
	"testing"
)

func TestLookupPrefix(t *testing.T) {
	tests := []struct {
		name        string
		sectionHex  string
		expectedApp string
		found       bool
	}{
		{name: "dana id", sectionHex: "444e494400", expectedApp: AppDanaID, found: true},
		{name: "dana vote", sectionHex: "444e565400", expectedApp: AppDanaVote, found: true},
		{name: "alp", sectionHex: "534c503200", expectedApp: AppALP, found: true},
		{name: "prefix only", sectionHex: "444e4944", expectedApp: AppDanaID, found: true},
		{name: "unknown", sectionHex: "deadbeef00", found: false},
		{name: "too short", sectionHex: "444e49", found: false},
		{name: "empty", sectionHex: "", found: false},
	}

	for _, test := range tests {
		section, err := hex.DecodeString(test.sectionHex)
		if err != nil {
			t.Fatalf("%s: bad test hex: %s", test.name, err)
		}
		app, found := LookupPrefix(section)
		if found != test.found {
			t.Errorf("%s: expected found=%t, got %t", test.name, test.found, found)
			continue
		}
		if found && app.Name != test.expectedApp {
			t.Errorf("%s: expected app %s, got %s", test.name, test.expectedApp, app.Name)
		}
	}
}

func TestLokadIDValues(t *testing.T) {
	if DanaIDLokadID.String() != "444e4944" {
		t.Errorf("unexpected DNID LOKAD ID %s", DanaIDLokadID)
	}
	if DanaVoteLokadID.String() != "444e5654" {
		t.Errorf("unexpected DNVT LOKAD ID %s", DanaVoteLokadID)
	}
	if ALPLokadID.String() != "534c5032" {
		t.Errorf("unexpected ALP LOKAD ID %s", ALPLokadID)
	}
}

func TestSubTypesAreCopied(t *testing.T) {
	app, _ := Lookup(DanaIDLokadID)
	subTypes := app.SubTypes()
	if len(subTypes) != 3 {
		t.Fatalf("expected 3 identity sub-types, got %v", subTypes)
	}
	subTypes[0] = "mutated"

	again, _ := Lookup(DanaIDLokadID)
	if again.SubTypes()[0] != SubTypeGenesis {
		t.Fatalf("registry sub-types were mutated through a returned slice")
	}
	if len(Apps()) != 3 {
		t.Fatalf("expected 3 known apps, got %d", len(Apps()))
	}
}

func TestAppsOrder(t *testing.T) {
	expected := []LokadID{DanaIDLokadID, DanaVoteLokadID, ALPLokadID}
	for i := 0; i < 10; i++ {
		apps := Apps()
		if len(apps) != len(expected) {
			t.Fatalf("expected %d apps, got %d", len(expected), len(apps))
		}
		for j, app := range apps {
			if app.LokadID != expected[j] {
				t.Fatalf("app %d: expected %s, got %s", j, expected[j], app.LokadID)
			}
		}
	}
}
