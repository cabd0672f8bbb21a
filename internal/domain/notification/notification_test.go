package notification

import (
	"context"
	"testing"
	"time"
)

func TestAppendPrepends(t *testing.T) {
	log := NewLog()
	log.Append("first", SeverityInfo)
	second := log.Append("second", SeveritySuccess)

	entries := log.List()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("newest entry not first: %q", entries[0].Message)
	}
	if entries[0].Read {
		t.Errorf("new entry born read")
	}
	if entries[0].ID == entries[1].ID {
		t.Errorf("duplicate ids assigned")
	}
}

func TestAppend_UnknownSeverityCoerced(t *testing.T) {
	log := NewLog()
	n := log.Append("odd", Severity("fatal"))
	if n.Type != SeverityInfo {
		t.Errorf("type = %q, want info", n.Type)
	}
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	log := NewLog()
	a := log.Append("a", SeverityInfo)
	log.Append("b", SeverityWarning)
	if got := log.UnreadCount(); got != 2 {
		t.Fatalf("unread = %d, want 2", got)
	}

	log.MarkRead(a.ID)
	if got := log.UnreadCount(); got != 1 {
		t.Errorf("unread after mark = %d, want 1", got)
	}

	// Re-marking and unknown ids are no-ops.
	log.MarkRead(a.ID)
	log.MarkRead("notif_missing")
	if got := log.UnreadCount(); got != 1 {
		t.Errorf("unread after no-op marks = %d, want 1", got)
	}
}

func TestSeededLog(t *testing.T) {
	log := NewSeededLog()
	entries := log.List()
	if len(entries) != 3 {
		t.Fatalf("seeded entries = %d, want 3", len(entries))
	}
	if got := log.UnreadCount(); got != 2 {
		t.Errorf("seeded unread = %d, want 2", got)
	}
	if !entries[0].Timestamp.After(entries[2].Timestamp) {
		t.Errorf("seeded entries not newest first")
	}
}

func TestNotifyAdapter(t *testing.T) {
	log := NewLog()
	log.Notify(context.Background(), "patient created", "success")

	entries := log.List()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Type != SeveritySuccess {
		t.Errorf("type = %q, want success", entries[0].Type)
	}
	if time.Since(entries[0].Timestamp) > time.Minute {
		t.Errorf("timestamp not set to now: %v", entries[0].Timestamp)
	}
}
