package log

import (
	"testing"
	"time"
)

// recordingLogger records events for testing.
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	r1 := &recordingLogger{}
	r2 := &recordingLogger{}
	r3 := &recordingLogger{}

	multi := NewMultiLogger(r1, r2, r3)
	multi.Log(Event{
		Timestamp: time.Now(),
		LoaderID:  "loader-123",
		Stage:     StageProbe,
		Category:  CategoryOutcome,
	})

	for i, r := range []*recordingLogger{r1, r2, r3} {
		if len(r.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(r.events))
			continue
		}
		if r.events[0].LoaderID != "loader-123" {
			t.Errorf("logger %d: LoaderID = %q, want %q", i, r.events[0].LoaderID, "loader-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{LoaderID: "loader"})
	if multi.Len() != 0 {
		t.Errorf("Len() = %d, want 0", multi.Len())
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	r := &recordingLogger{}
	multi := NewMultiLogger(nil, r, nil)

	if multi.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", multi.Len())
	}
	multi.Log(Event{LoaderID: "loader"})
	if len(r.events) != 1 {
		t.Errorf("got %d events, want 1", len(r.events))
	}
}
