package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logOne(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsProbeEvent(t *testing.T) {
	entry := logOne(t, Event{
		Timestamp: time.Now(),
		LoaderID:  "loader-123",
		Stage:     StageProbe,
		Category:  CategoryOutcome,
		Provider:  "system",
		Path:      `C:\Windows\System32\mapi32.dll`,
		Probe:     &ProbeEvent{Installed: true},
	})

	if entry["msg"] != "loader" {
		t.Errorf("msg: got %v, want %q", entry["msg"], "loader")
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
	if entry["loader_id"] != "loader-123" {
		t.Errorf("loader_id: got %v, want %q", entry["loader_id"], "loader-123")
	}
	if entry["stage"] != "PROBE" {
		t.Errorf("stage: got %v, want %q", entry["stage"], "PROBE")
	}
	if entry["provider"] != "system" {
		t.Errorf("provider: got %v, want %q", entry["provider"], "system")
	}
	if entry["installed"] != true {
		t.Errorf("installed: got %v, want true", entry["installed"])
	}
}

func TestSlogAdapterLogsExportEvent(t *testing.T) {
	entry := logOne(t, Event{
		LoaderID: "loader",
		Stage:    StageResolve,
		Category: CategoryOutcome,
		Export:   &ExportEvent{Name: "MAPILogonEx", Symbol: "MAPILogonEx@20", Required: true, Resolved: true},
	})

	if entry["export"] != "MAPILogonEx" {
		t.Errorf("export: got %v", entry["export"])
	}
	if entry["symbol"] != "MAPILogonEx@20" {
		t.Errorf("symbol: got %v", entry["symbol"])
	}
	if entry["required"] != true {
		t.Errorf("required: got %v", entry["required"])
	}
}

func TestSlogAdapterLogsBindEvent(t *testing.T) {
	entry := logOne(t, Event{
		LoaderID: "loader",
		Stage:    StageBind,
		Category: CategoryOutcome,
		Bind:     &BindEvent{ExportsVersion: "1", Resolved: 17, Missing: []string{"WrapCompressedRTFStream"}},
	})

	if entry["resolved"] != float64(17) {
		t.Errorf("resolved: got %v, want 17", entry["resolved"])
	}
	missing, ok := entry["missing"].([]any)
	if !ok || len(missing) != 1 {
		t.Errorf("missing: got %v", entry["missing"])
	}
}

func TestSlogAdapterLogsStateChange(t *testing.T) {
	entry := logOne(t, Event{
		LoaderID:    "loader",
		Stage:       StageLifecycle,
		Category:    CategoryState,
		StateChange: &StateChangeEvent{OldState: "PROBING", NewState: "BOUND", Reason: "bind complete"},
	})

	if entry["old_state"] != "PROBING" || entry["new_state"] != "BOUND" {
		t.Errorf("states: got %v -> %v", entry["old_state"], entry["new_state"])
	}
	if entry["reason"] != "bind complete" {
		t.Errorf("reason: got %v", entry["reason"])
	}
}

func TestSlogAdapterLogsErrorAtWarn(t *testing.T) {
	entry := logOne(t, Event{
		LoaderID: "loader",
		Stage:    StageBind,
		Category: CategoryError,
		Error:    &ErrorEventData{Stage: StageBind, Message: "access denied", Kind: "BIND_ERROR", Context: "LoadLibraryEx"},
	})

	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["error_kind"] != "BIND_ERROR" {
		t.Errorf("error_kind: got %v", entry["error_kind"])
	}
	if entry["error_msg"] != "access denied" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
	if entry["error_stage"] != "BIND" {
		t.Errorf("error_stage: got %v", entry["error_stage"])
	}
}
