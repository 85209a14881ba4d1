// Package scan walks filesystem trees, classifies PEM artifact files and
// runs the two-phase inventory pipeline over them.
package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkitools/keyscan/internal/artifact"
	"github.com/pkitools/keyscan/internal/audit"
)

// Item is one classified file.
type Item struct {
	Path     string
	Artifact artifact.Artifact
}

// Inventory is the ordered collection of classified artifacts. Order follows
// the directory listing during collection and carries no guarantee;
// consumers that need determinism must sort.
type Inventory struct {
	items []Item
}

// Len returns the number of classified artifacts.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns the artifacts in discovery order. The returned slice is a
// read view and must not be modified.
func (inv *Inventory) Items() []Item { return inv.items }

// Collector walks paths and classifies every regular file it finds.
type Collector struct {
	exempt map[string]struct{}
	warn   io.Writer
}

// NewCollector creates a collector. Warnings about unrecognized files are
// written to warn in the form "WARNING: file <path> could not be interpreted".
func NewCollector(cfg *Config, warn io.Writer) *Collector {
	return &Collector{exempt: cfg.exemptSet(), warn: warn}
}

// Collect recursively expands the given paths and classifies every regular
// file. Files that fail classification are skipped, with a warning unless
// their base name is exempt. I/O failures abort the collection with a
// *ScanError; no partial inventory is returned.
func (c *Collector) Collect(paths []string) (*Inventory, error) {
	inv := &Inventory{}
	for _, path := range paths {
		if err := c.collectPath(path, inv); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (c *Collector) collectPath(path string, inv *Inventory) error {
	info, err := os.Stat(path)
	if err != nil {
		return NewScanError("stat", path, err)
	}

	if info.IsDir() {
		// No symlink-cycle guard: a cyclic tree descends until the
		// operating system reports an error.
		entries, err := os.ReadDir(path)
		if err != nil {
			return NewScanError("list", path, err)
		}
		for _, entry := range entries {
			if err := c.collectPath(filepath.Join(path, entry.Name()), inv); err != nil {
				return err
			}
		}
		return nil
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return NewScanError("read", path, err)
	}

	art, ok := artifact.Classify(data)
	if !ok {
		if _, exempt := c.exempt[filepath.Base(path)]; !exempt {
			fmt.Fprintf(c.warn, "WARNING: file %s could not be interpreted\n", path)
			if err := audit.LogFileUnrecognized(path); err != nil {
				return err
			}
		}
		return nil
	}

	inv.items = append(inv.items, Item{Path: path, Artifact: art})
	return nil
}
