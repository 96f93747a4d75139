// Package determinism provides primitives for guaranteeing deterministic execution.
// Ordering of every ranked or iterated collection goes through these helpers
// instead of raw map iteration.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// SortedKeys returns the keys of a string-keyed map in lexical order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortStable sorts a slice with a strict-weak comparator, preserving the
// relative order of equal elements
func SortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}

// Hasher accumulates content into a stable hash
type Hasher struct {
	inner interface {
		Write(p []byte) (int, error)
		Sum(b []byte) []byte
	}
}

// NewHasher creates a content hasher
func NewHasher() *Hasher {
	return &Hasher{inner: sha256.New()}
}

// Write adds a field with a separator so adjacent fields cannot collide
func (h *Hasher) Write(parts ...string) {
	for _, p := range parts {
		h.inner.Write([]byte(p))
		h.inner.Write([]byte{0})
	}
}

// Sum returns the accumulated hash
func (h *Hasher) Sum() ContentHash {
	var out ContentHash
	copy(out[:], h.inner.Sum(nil))
	return out
}
