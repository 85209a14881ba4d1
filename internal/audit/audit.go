package audit

import (
	"fmt"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalWriter Writer = NopWriter{}
	enabled      bool
)

// Init installs the global audit writer. A nil writer disables auditing.
func Init(w Writer) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if w == nil {
		globalWriter = NopWriter{}
		enabled = false
		return
	}
	globalWriter = w
	enabled = true
}

// InitFile installs a file-backed global audit writer. An empty path
// disables auditing.
func InitFile(path string) error {
	if path == "" {
		Init(nil)
		return nil
	}
	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	Init(w)
	return nil
}

// Close closes the global writer and disables auditing.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	err := globalWriter.Close()
	globalWriter = NopWriter{}
	enabled = false
	return err
}

// Enabled reports whether audit logging is active.
func Enabled() bool {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return enabled
}

// Log writes an event to the global writer. The returned error is wrapped
// so callers can fail their operation directly: if auditing is enabled and
// the write fails, the audited operation must fail too.
func Log(event *Event) error {
	globalMu.RLock()
	w := globalWriter
	globalMu.RUnlock()

	if err := w.Write(event); err != nil {
		return fmt.Errorf("audit log failed: %w", err)
	}
	return nil
}

// LogScanStarted records the start of a scan over the given roots.
func LogScanStarted(paths []string) error {
	e := NewEvent(EventScanStarted)
	e.Paths = paths
	return Log(e)
}

// LogFileUnrecognized records a non-exempt file that failed classification.
func LogFileUnrecognized(path string) error {
	e := NewEvent(EventFileUnrecognized)
	e.Path = path
	return Log(e)
}

// LogArtifactSkipped records an artifact dropped during extraction or
// description.
func LogArtifactSkipped(path, detail string) error {
	e := NewEvent(EventArtifactSkipped)
	e.Path = path
	e.Detail = detail
	return Log(e)
}

// LogReportRendered records a completed report and its entry count.
func LogReportRendered(entries int) error {
	e := NewEvent(EventReportRendered)
	e.Entries = entries
	return Log(e)
}
