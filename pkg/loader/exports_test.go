package loader

import (
	"errors"
	"testing"
)

func TestLoadExportsCurrent(t *testing.T) {
	m, err := LoadExports(CurrentExportsVersion)
	if err != nil {
		t.Fatalf("LoadExports failed: %v", err)
	}
	if m.Version != CurrentExportsVersion {
		t.Errorf("Version = %q, want %q", m.Version, CurrentExportsVersion)
	}

	logon, ok := m.Lookup("MAPILogonEx")
	if !ok {
		t.Fatal("MAPILogonEx missing from manifest")
	}
	if !logon.Required || logon.ArgBytes != 20 {
		t.Errorf("MAPILogonEx = %+v", logon)
	}

	required := m.Required()
	if len(required) == 0 || required[0] != "MAPIInitialize" {
		t.Errorf("Required() = %v", required)
	}

	again, _ := LoadExports(CurrentExportsVersion)
	if again != m {
		t.Error("LoadExports should return the cached manifest")
	}
}

func TestLoadExportsUnknown(t *testing.T) {
	if _, err := LoadExports("0.9"); !errors.Is(err, ErrUnknownExportsVersion) {
		t.Errorf("LoadExports err = %v, want ErrUnknownExportsVersion", err)
	}
}

func TestAvailableExports(t *testing.T) {
	versions, err := AvailableExports()
	if err != nil {
		t.Fatalf("AvailableExports failed: %v", err)
	}
	if len(versions) == 0 || versions[0] != "1" {
		t.Errorf("AvailableExports() = %v", versions)
	}
	for _, v := range versions {
		if _, err := LoadExports(v); err != nil {
			t.Errorf("LoadExports(%q) failed: %v", v, err)
		}
	}
}

func TestParseExportsValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "version: \"2\"\nexports: []\n"},
		{"no name", "exports:\n  - arg_bytes: 4\n"},
		{"duplicate", "exports:\n  - name: A\n  - name: A\n"},
		{"odd args", "exports:\n  - name: A\n    arg_bytes: 6\n"},
		{"bad yaml", "exports: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseExports([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExportSymbol(t *testing.T) {
	e := Export{Name: "HrQueryAllRows", ArgBytes: 24}
	if got := e.Symbol(false); got != "HrQueryAllRows" {
		t.Errorf("Symbol(false) = %q", got)
	}
	if got := e.Symbol(true); got != "HrQueryAllRows@24" {
		t.Errorf("Symbol(true) = %q", got)
	}
	if got := DecorateName("MAPIUninitialize", 0); got != "MAPIUninitialize@0" {
		t.Errorf("DecorateName = %q", got)
	}
}
