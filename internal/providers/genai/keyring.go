package genai

import (
	"sync"

	"archviz/internal/domain"
)

// KeyRing distributes calls across a fixed set of API credentials with
// explicit round-robin state. It is owned by the composition root and
// injected into the client, never a package-level counter, so concurrent
// pipelines share one well-defined rotation.
type KeyRing struct {
	mu   sync.Mutex
	keys []string
	next int
}

// NewKeyRing builds a ring from the configured keys, dropping blanks.
func NewKeyRing(keys []string) *KeyRing {
	ring := &KeyRing{}
	for _, k := range keys {
		if k != "" {
			ring.keys = append(ring.keys, k)
		}
	}
	return ring
}

// Next returns the next key in rotation. An empty ring yields
// domain.ErrMissingCredential.
func (r *KeyRing) Next() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.keys) == 0 {
		return "", domain.ErrMissingCredential
	}
	key := r.keys[r.next]
	r.next = (r.next + 1) % len(r.keys)
	return key, nil
}

// Size reports how many credentials are in rotation.
func (r *KeyRing) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}
