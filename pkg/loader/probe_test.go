package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPathProbe(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "olmapi32.dll")
	if err := os.WriteFile(lib, []byte("MZ"), 0o644); err != nil {
		t.Fatal(err)
	}

	inst, err := PathProbe{Path: lib}.Locate()
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if inst.Provider != ProviderPath || inst.Path != lib {
		t.Errorf("Locate() = %+v", inst)
	}

	for name, p := range map[string]PathProbe{
		"empty":     {},
		"missing":   {Path: filepath.Join(dir, "mapi32.dll")},
		"directory": {Path: dir},
	} {
		if _, err := p.Locate(); !errors.Is(err, ErrNotInstalled) {
			t.Errorf("%s: err = %v, want ErrNotInstalled", name, err)
		}
	}
}

func TestChainProbe(t *testing.T) {
	calls := 0
	fail := FuncProbe(func() (Installation, error) {
		calls++
		return Installation{}, errors.New("first failed")
	})
	found := FuncProbe(func() (Installation, error) {
		calls++
		return Installation{Provider: ProviderSystem, Path: "mapi32.dll"}, nil
	})
	never := FuncProbe(func() (Installation, error) {
		t.Error("probe after a hit should not run")
		return Installation{}, nil
	})

	inst, err := ChainProbe{fail, found, never}.Locate()
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if inst.Provider != ProviderSystem || calls != 2 {
		t.Errorf("Locate() = %+v after %d calls", inst, calls)
	}
}

func TestChainProbeAllFail(t *testing.T) {
	a := errors.New("registry")
	b := errors.New("system dir")
	_, err := ChainProbe{
		FuncProbe(func() (Installation, error) { return Installation{}, a }),
		FuncProbe(func() (Installation, error) { return Installation{}, b }),
	}.Locate()
	if !errors.Is(err, a) || !errors.Is(err, b) {
		t.Errorf("err = %v, want both causes", err)
	}

	if _, err := (ChainProbe{}).Locate(); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("empty chain err = %v", err)
	}
}

func TestDefaultProbeExplicitPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LibraryPath = `C:\mapi\olmapi32.dll`
	p, ok := DefaultProbe(cfg).(PathProbe)
	if !ok || p.Path != cfg.LibraryPath {
		t.Errorf("DefaultProbe = %#v, want PathProbe", DefaultProbe(cfg))
	}
}
