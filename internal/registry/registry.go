package registry

import (
	"crypto/rsa"
	"fmt"
)

// Registry owns the deduplicated key set, the canonical display name of each
// key identity, and the fixed key order used for signature search. It is
// built exactly once, after all artifacts are classified, and is read-only
// afterwards.
type Registry struct {
	order []KeyID
	keys  map[KeyID]*rsa.PublicKey
	names map[KeyID]string
}

type candidate struct {
	priority Priority
	label    string
}

// Build folds the extractions, in order, into a registry.
//
// For each key identity the surviving label is chosen left to right: an
// incoming candidate replaces the current one when its priority number is
// equal or lower, so ties favor the most recently seen entry and strictly
// worse candidates are discarded. A key's position in the search order is
// fixed at first discovery, even when its label is replaced later; the
// first-seen index is tracked explicitly rather than relying on map
// iteration order.
func Build(extractions []Extraction) *Registry {
	r := &Registry{
		keys:  make(map[KeyID]*rsa.PublicKey),
		names: make(map[KeyID]string),
	}

	winners := make(map[KeyID]candidate)
	for _, ex := range extractions {
		current, seen := winners[ex.ID]
		if !seen {
			r.order = append(r.order, ex.ID)
			r.keys[ex.ID] = ex.Key
			winners[ex.ID] = candidate{priority: ex.Priority, label: ex.Label}
			continue
		}
		if ex.Priority <= current.priority {
			winners[ex.ID] = candidate{priority: ex.Priority, label: ex.Label}
		}
	}

	// Assign canonical names in discovery order. A label already taken by an
	// earlier key gets the first unused " (N)" suffix, N >= 2.
	taken := make(map[string]struct{}, len(r.order))
	for _, id := range r.order {
		label := winners[id].label
		name := label
		for n := 2; ; n++ {
			if _, used := taken[name]; !used {
				break
			}
			name = fmt.Sprintf("%s (%d)", label, n)
		}
		taken[name] = struct{}{}
		r.names[id] = "key<" + name + ">"
	}

	return r
}

// Len returns the number of distinct registered keys.
func (r *Registry) Len() int { return len(r.order) }

// Keys returns the distinct registered keys in first-discovery order.
func (r *Registry) Keys() []*rsa.PublicKey {
	keys := make([]*rsa.PublicKey, len(r.order))
	for i, id := range r.order {
		keys[i] = r.keys[id]
	}
	return keys
}

// Name returns the canonical display name for a key, of the form
// "key<name>". ok is false for keys that never appeared in an extraction.
func (r *Registry) Name(pub *rsa.PublicKey) (string, bool) {
	name, ok := r.names[IDOf(pub)]
	return name, ok
}
