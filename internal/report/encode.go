package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Format selects the report encoding.
type Format string

const (
	// FormatText is the human-readable report (the default).
	FormatText Format = "text"
	// FormatJSON encodes the sorted entries as indented JSON.
	FormatJSON Format = "json"
	// FormatCBOR encodes the sorted entries as CBOR.
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatCBOR:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown report format: %s (use: text, json, cbor)", s)
}

// Document is the machine-readable report envelope.
type Document struct {
	Entries []Entry `json:"entries"`
}

// Encode writes the entries in the given format. All formats sort the
// entries the same way; json and cbor carry the same content as text.
func Encode(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case FormatJSON:
		Sort(entries)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Document{Entries: entries}); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return nil
	case FormatCBOR:
		Sort(entries)
		if err := cbor.NewEncoder(w).Encode(Document{Entries: entries}); err != nil {
			return fmt.Errorf("failed to encode CBOR report: %w", err)
		}
		return nil
	default:
		return Render(w, entries)
	}
}
