package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/outlook-mapi/mapi-go/pkg/log"
)

func createTestTraceFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+log.FileExt)

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test trace: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// boundTrace is the event sequence of one successful load with one
// missing optional export, followed by a failed load from a second loader.
func boundTrace() []log.Event {
	ts := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	const a = "aaaaaaaa-1111-2222-3333-444444444444"
	const b = "bbbbbbbb-1111-2222-3333-444444444444"
	path := `C:\Program Files\Microsoft Office\root\Office16\OLMAPI32.DLL`
	return []log.Event{
		{Timestamp: ts, LoaderID: a, Stage: log.StageLifecycle, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "UNRESOLVED", NewState: "PROBING", Reason: "load requested"}},
		{Timestamp: ts.Add(time.Millisecond), LoaderID: a, Stage: log.StageProbe, Category: log.CategoryOutcome,
			Provider: "outlook", Path: path, Probe: &log.ProbeEvent{Installed: true, Duration: 250 * time.Microsecond}},
		{Timestamp: ts.Add(2 * time.Millisecond), LoaderID: a, Stage: log.StageResolve, Category: log.CategoryOutcome,
			Provider: "outlook", Path: path, Export: &log.ExportEvent{Name: "MAPILogonEx", Symbol: "MAPILogonEx@20", Required: true, Resolved: true}},
		{Timestamp: ts.Add(3 * time.Millisecond), LoaderID: a, Stage: log.StageResolve, Category: log.CategoryOutcome,
			Provider: "outlook", Path: path, Export: &log.ExportEvent{Name: "WrapCompressedRTFStream", Symbol: "WrapCompressedRTFStream", Resolved: false}},
		{Timestamp: ts.Add(4 * time.Millisecond), LoaderID: a, Stage: log.StageBind, Category: log.CategoryOutcome,
			Provider: "outlook", Path: path, Bind: &log.BindEvent{ExportsVersion: "1", Resolved: 1, Missing: []string{"WrapCompressedRTFStream"}, Duration: 2 * time.Millisecond}},
		{Timestamp: ts.Add(5 * time.Millisecond), LoaderID: a, Stage: log.StageLifecycle, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "PROBING", NewState: "BOUND"}},
		{Timestamp: ts.Add(time.Second), LoaderID: b, Stage: log.StageProbe, Category: log.CategoryError,
			Error: &log.ErrorEventData{Stage: log.StageProbe, Message: "MAPI subsystem not installed", Kind: "NOT_INSTALLED", Context: "presence probe"}},
		{Timestamp: ts.Add(time.Second + time.Millisecond), LoaderID: b, Stage: log.StageLifecycle, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "PROBING", NewState: "ABSENT"}},
	}
}
