package scan

import (
	"log"

	"github.com/pkitools/keyscan/internal/audit"
	"github.com/pkitools/keyscan/internal/registry"
	"github.com/pkitools/keyscan/internal/report"
)

// Run executes the inventory pipeline in two strict phases: first every
// input is collected and classified and the complete key registry is built,
// only then is each artifact described against the frozen registry. Naming
// and signature attribution need the global key set, so no description is
// rendered before the registry is complete.
//
// Individual extraction or description failures are logged and drop that
// artifact's entry; only I/O and audit failures abort the run.
func Run(collector *Collector, paths []string) ([]report.Entry, error) {
	inv, err := collector.Collect(paths)
	if err != nil {
		return nil, err
	}

	var extractions []registry.Extraction
	for _, item := range inv.Items() {
		ex, ok, err := registry.Extract(item.Path, item.Artifact)
		if err != nil {
			log.Printf("skipping %s: %v", item.Path, err)
			if err := audit.LogArtifactSkipped(item.Path, err.Error()); err != nil {
				return nil, err
			}
			continue
		}
		if ok {
			extractions = append(extractions, ex)
		}
	}
	reg := registry.Build(extractions)

	entries := make([]report.Entry, 0, inv.Len())
	for _, item := range inv.Items() {
		desc, err := report.Describe(item.Path, item.Artifact, reg)
		if err != nil {
			log.Printf("skipping %s: %v", item.Path, err)
			if err := audit.LogArtifactSkipped(item.Path, err.Error()); err != nil {
				return nil, err
			}
			continue
		}
		entries = append(entries, report.Entry{Description: desc, Path: item.Path})
	}
	return entries, nil
}
