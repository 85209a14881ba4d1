package audit

// Writer is the sink for audit events.
//
// Implementations must return an error when a write fails (audit failure =
// operation failure), set the hash chain fields on the event, and flush to
// persistent storage before returning.
type Writer interface {
	// Write validates the event, links it into the hash chain and persists it.
	Write(event *Event) error

	// Close flushes pending writes and closes the writer.
	Close() error

	// LastHash returns the hash of the last written event, or GenesisHash
	// if none has been written.
	LastHash() string
}

// NopWriter discards all events. Used when audit logging is disabled.
type NopWriter struct{}

var _ Writer = (*NopWriter)(nil)

func (NopWriter) Write(*Event) error { return nil }
func (NopWriter) Close() error       { return nil }
func (NopWriter) LastHash() string   { return GenesisHash }
