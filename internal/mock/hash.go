package mock

import (
	"github.com/spaolacci/murmur3"
)

// stableHash derives the bounded jitter applied to mock timing and
// confidence fields. Deterministic for identical input.
func stableHash(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}
