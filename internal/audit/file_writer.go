package audit

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const (
	// GenesisHash is the hash_prev of the first event in a chain.
	GenesisHash = "sha256:genesis"

	hashPrefix = "sha256:"
)

// FileWriter appends audit events to a JSONL file with hash chaining.
type FileWriter struct {
	mu       sync.Mutex
	file     *os.File
	lastHash string
	path     string
}

var _ Writer = (*FileWriter)(nil)

// NewFileWriter opens (or creates) a JSONL audit log in append mode. When
// the file already holds events, the chain continues from the last hash.
func NewFileWriter(path string) (*FileWriter, error) {
	lastHash := GenesisHash
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		h, err := lastHashOf(data)
		if err != nil {
			return nil, fmt.Errorf("failed to read last hash from existing log: %w", err)
		}
		lastHash = h
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	return &FileWriter{file: file, lastHash: lastHash, path: path}, nil
}

// lastHashOf returns the hash of the final event in JSONL data.
func lastHashOf(data []byte) (string, error) {
	var lastLine []byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := bytes.TrimSpace(scanner.Bytes()); len(line) > 0 {
			lastLine = append(lastLine[:0], line...)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if len(lastLine) == 0 {
		return GenesisHash, nil
	}

	var event struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(lastLine, &event); err != nil {
		return "", fmt.Errorf("failed to parse last event: %w", err)
	}
	if event.Hash == "" {
		return "", fmt.Errorf("last event has no hash")
	}
	return event.Hash, nil
}

// Write appends an event, chained to the previous one, and syncs to disk.
func (w *FileWriter) Write(event *Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	event.HashPrev = w.lastHash
	canonical, err := event.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	event.Hash = chainHash(canonical, w.lastHash)

	line, err := event.JSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	if _, err := w.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync audit log: %w", err)
	}

	w.lastHash = event.Hash
	return nil
}

// Close syncs and closes the log file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	if err := w.file.Sync(); err != nil {
		return err
	}
	return w.file.Close()
}

// LastHash returns the hash of the last written event.
func (w *FileWriter) LastHash() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastHash
}

// Path returns the log file path.
func (w *FileWriter) Path() string { return w.path }

// chainHash computes sha256(canonical || prevHash).
func chainHash(canonical []byte, prevHash string) string {
	h := sha256.New()
	_, _ = h.Write(canonical)
	_, _ = h.Write([]byte(prevHash))
	return hashPrefix + hex.EncodeToString(h.Sum(nil))
}

// VerifyChain verifies the hash chain of an audit log file. It returns the
// number of valid events and the first inconsistency found.
func VerifyChain(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read audit log: %w", err)
	}

	expectedPrev := GenesisHash
	valid := 0
	lineNum := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return valid, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		if event.HashPrev != expectedPrev {
			return valid, fmt.Errorf("line %d: hash chain broken: expected prev=%s, got prev=%s",
				lineNum, expectedPrev, event.HashPrev)
		}

		canonical, err := event.CanonicalJSON()
		if err != nil {
			return valid, fmt.Errorf("line %d: failed to serialize: %w", lineNum, err)
		}
		if want := chainHash(canonical, event.HashPrev); event.Hash != want {
			return valid, fmt.Errorf("line %d: hash mismatch: expected=%s, got=%s",
				lineNum, want, event.Hash)
		}

		expectedPrev = event.Hash
		valid++
	}
	if err := scanner.Err(); err != nil {
		return valid, fmt.Errorf("scan error: %w", err)
	}
	return valid, nil
}
