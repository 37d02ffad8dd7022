package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 18, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		LoaderID:  "abc12345-def6-7890-abcd-ef1234567890",
		Stage:     StageBind,
		Category:  CategoryOutcome,
		Provider:  "outlook",
		Path:      `C:\Program Files\Microsoft Office\root\Office16\OLMAPI32.DLL`,
		Bind: &BindEvent{
			ExportsVersion: "1",
			Resolved:       17,
			Missing:        []string{"WrapCompressedRTFStream"},
			Duration:       3 * time.Millisecond,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.LoaderID != original.LoaderID {
		t.Errorf("LoaderID: got %q, want %q", decoded.LoaderID, original.LoaderID)
	}
	if decoded.Stage != original.Stage {
		t.Errorf("Stage: got %v, want %v", decoded.Stage, original.Stage)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Provider != original.Provider {
		t.Errorf("Provider: got %q, want %q", decoded.Provider, original.Provider)
	}
	if decoded.Path != original.Path {
		t.Errorf("Path: got %q, want %q", decoded.Path, original.Path)
	}
	if decoded.Bind == nil {
		t.Fatal("Bind is nil")
	}
	if decoded.Bind.Resolved != 17 {
		t.Errorf("Bind.Resolved: got %d, want 17", decoded.Bind.Resolved)
	}
	if len(decoded.Bind.Missing) != 1 || decoded.Bind.Missing[0] != "WrapCompressedRTFStream" {
		t.Errorf("Bind.Missing: got %v", decoded.Bind.Missing)
	}
	if decoded.Bind.Duration != 3*time.Millisecond {
		t.Errorf("Bind.Duration: got %v, want 3ms", decoded.Bind.Duration)
	}
	if decoded.Probe != nil || decoded.Export != nil || decoded.Error != nil || decoded.StateChange != nil {
		t.Error("unset payloads should decode as nil")
	}
}

func TestEncodeEventUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{LoaderID: "x"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if bytes.Contains(data, []byte("LoaderID")) {
		t.Error("encoded event contains field names")
	}
}

func TestEncodeEventDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LoaderID:  "loader",
		Stage:     StageResolve,
		Export:    &ExportEvent{Name: "MAPILogonEx", Symbol: "MAPILogonEx@20", Required: true, Resolved: true},
	}
	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	b, _ := EncodeEvent(event)
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestPayloadsRoundTrip(t *testing.T) {
	events := []Event{
		{Stage: StageLifecycle, Category: CategoryState, StateChange: &StateChangeEvent{OldState: "UNRESOLVED", NewState: "PROBING", Reason: "first use"}},
		{Stage: StageProbe, Category: CategoryOutcome, Probe: &ProbeEvent{Installed: true, Duration: time.Microsecond}},
		{Stage: StageResolve, Category: CategoryOutcome, Export: &ExportEvent{Name: "MAPIInitialize", Symbol: "MAPIInitialize@4", Resolved: true}},
		{Stage: StageProbe, Category: CategoryError, Error: &ErrorEventData{Stage: StageProbe, Message: "no client", Kind: "NOT_INSTALLED", Context: "registry"}},
	}

	for _, original := range events {
		data, err := EncodeEvent(original)
		if err != nil {
			t.Fatalf("EncodeEvent failed: %v", err)
		}
		decoded, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent failed: %v", err)
		}
		switch {
		case original.StateChange != nil:
			if decoded.StateChange == nil || *decoded.StateChange != *original.StateChange {
				t.Errorf("StateChange: got %+v, want %+v", decoded.StateChange, original.StateChange)
			}
		case original.Probe != nil:
			if decoded.Probe == nil || *decoded.Probe != *original.Probe {
				t.Errorf("Probe: got %+v, want %+v", decoded.Probe, original.Probe)
			}
		case original.Export != nil:
			if decoded.Export == nil || *decoded.Export != *original.Export {
				t.Errorf("Export: got %+v, want %+v", decoded.Export, original.Export)
			}
		case original.Error != nil:
			if decoded.Error == nil || *decoded.Error != *original.Error {
				t.Errorf("Error: got %+v, want %+v", decoded.Error, original.Error)
			}
		}
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xFF, 0x00}); err == nil {
		t.Error("expected error decoding garbage")
	}
}
