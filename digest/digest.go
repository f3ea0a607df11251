// Package digest computes a stable content hash of a serialized
// Specification (C9), so callers can detect whether a compiled output
// changed across a rebuild without diffing the full text.
package digest

import (
	"github.com/minio/highwayhash"

	"github.com/viant/lolaspec/serialize"
	"github.com/viant/lolaspec/spec"
)

// key is fixed rather than random: two processes hashing the same
// specification text must agree on the digest.
var key = []byte("lolaspec-digest-key-0123456789AB")

// Bytes hashes data directly with HighwayHash64.
func Bytes(data []byte) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// Specification serializes s (C6) and hashes the resulting text. Two
// Specifications that serialize identically — including after an idempotent
// CollapseExpression/Prune pass — hash identically.
func Specification(s *spec.Specification) (uint64, error) {
	text, err := serialize.ToString(s)
	if err != nil {
		return 0, err
	}
	return Bytes([]byte(text))
}
