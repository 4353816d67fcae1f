package profile

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveRoundTrips(t *testing.T) {
	p := &Profile{
		Build:    "static",
		Platform: "unix",
		Compiler: "gnu",
		Roles:    map[string]string{"core": "internal", "cms": "consumer"},
	}

	path := filepath.Join(t.TempDir(), ProfileName)
	if err := Save(p, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if !reflect.DeepEqual(p, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", p, loaded)
	}
}

func TestSaveOmitsEmptyRoles(t *testing.T) {
	p := &Profile{Build: "shared", Platform: "unix", Compiler: "gnu"}

	path := filepath.Join(t.TempDir(), ProfileName)
	if err := Save(p, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if len(loaded.Roles) != 0 {
		t.Errorf("expected no roles table, got %v", loaded.Roles)
	}
	if loaded.Build != "shared" {
		t.Errorf("build = %q", loaded.Build)
	}
}
