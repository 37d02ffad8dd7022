package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDiscards(t *testing.T) {
	var l Logger = NoopLogger{}
	// Must not panic.
	l.Log(Event{Timestamp: time.Now(), LoaderID: "x"})
}

func TestLoggerFunc(t *testing.T) {
	var got []Event
	l := LoggerFunc(func(e Event) { got = append(got, e) })

	l.Log(Event{LoaderID: "a"})
	l.Log(Event{LoaderID: "b"})

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[1].LoaderID != "b" {
		t.Errorf("LoaderID = %q, want %q", got[1].LoaderID, "b")
	}
}
