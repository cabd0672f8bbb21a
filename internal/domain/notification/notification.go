// Package notification keeps the in-memory event feed shown in the dashboard
// header. Entries are append-only and only ever transition unread to read.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a feed entry for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ValidSeverity reports whether s is a known severity; unknown values are
// coerced to info at append time rather than rejected.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	}
	return false
}

type AppNotification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      Severity  `json:"type"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is the notification feed, newest first. Safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []AppNotification
	now     func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

// NewSeededLog returns a feed preloaded with the demo entries.
func NewSeededLog() *Log {
	l := NewLog()
	now := l.now()
	l.entries = []AppNotification{
		{
			ID:        "notif_1",
			Message:   "Simulation for Patient P001 (Johnathan M. Doe) is complete.",
			Type:      SeveritySuccess,
			Timestamp: now.Add(-1 * time.Hour),
		},
		{
			ID:        "notif_2",
			Message:   "New lab results available for Patient P002 (Alice B. Wonderland).",
			Type:      SeverityInfo,
			Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID:        "notif_3",
			Message:   "OncoTwin model v2.1 successfully deployed.",
			Type:      SeverityInfo,
			Read:      true,
			Timestamp: now.Add(-24 * time.Hour),
		},
	}
	return l
}

// Append prepends a new unread entry and returns a copy of it.
func (l *Log) Append(message string, severity Severity) AppNotification {
	if !ValidSeverity(severity) {
		severity = SeverityInfo
	}
	n := AppNotification{
		ID:        "notif_" + uuid.NewString(),
		Message:   message,
		Type:      severity,
		Timestamp: l.now(),
	}

	l.mu.Lock()
	l.entries = append([]AppNotification{n}, l.entries...)
	l.mu.Unlock()
	return n
}

// Notify lets the patient service emit feed entries without depending on
// this package's types.
func (l *Log) Notify(_ context.Context, message, severity string) {
	l.Append(message, Severity(severity))
}

// List returns all entries newest first.
func (l *Log) List() []AppNotification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]AppNotification(nil), l.entries...)
}

// UnreadCount reports how many entries are still unread.
func (l *Log) UnreadCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, n := range l.entries {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips one entry to read. Unknown ids and already-read entries are
// silent no-ops.
func (l *Log) MarkRead(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Read = true
			return
		}
	}
}
