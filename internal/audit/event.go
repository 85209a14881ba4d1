// Package audit provides tamper-evident audit logging for scan runs.
//
// Events are written as JSON lines chained with SHA-256 hashes, so an
// inventory produced for compliance purposes can show that its log was not
// truncated or edited. Audit failure fails the operation that triggered it.
// Timestamps are UTC. File contents are never logged, only paths.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// EventType categorizes an audit event.
type EventType string

const (
	// EventScanStarted records the roots of a scan run.
	EventScanStarted EventType = "SCAN_STARTED"

	// EventFileUnrecognized records a non-exempt file that failed
	// classification.
	EventFileUnrecognized EventType = "FILE_UNRECOGNIZED"

	// EventArtifactSkipped records a classified artifact dropped during
	// extraction or description.
	EventArtifactSkipped EventType = "ARTIFACT_SKIPPED"

	// EventReportRendered records the completion of a report.
	EventReportRendered EventType = "REPORT_RENDERED"
)

// Event is a single audit record.
type Event struct {
	Time    time.Time `json:"time"`
	Type    EventType `json:"type"`
	Host    string    `json:"host,omitempty"`
	Path    string    `json:"path,omitempty"`    // file the event refers to
	Paths   []string  `json:"paths,omitempty"`   // scan roots
	Detail  string    `json:"detail,omitempty"`  // failure reason
	Entries int       `json:"entries,omitempty"` // report entry count

	// Hash chain, set by the writer.
	HashPrev string `json:"hash_prev,omitempty"`
	Hash     string `json:"hash,omitempty"`
}

// NewEvent creates an event stamped with the current UTC time and hostname.
func NewEvent(t EventType) *Event {
	host, _ := os.Hostname()
	return &Event{Time: time.Now().UTC(), Type: t, Host: host}
}

// Validate checks the required fields.
func (e *Event) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if e.Time.IsZero() {
		return fmt.Errorf("event time is required")
	}
	return nil
}

// CanonicalJSON serializes the event without the hash fields. The chain
// hash is computed over this form.
func (e *Event) CanonicalJSON() ([]byte, error) {
	c := *e
	c.HashPrev = ""
	c.Hash = ""
	return json.Marshal(&c)
}

// JSON serializes the full event, including the hash chain fields.
func (e *Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}
