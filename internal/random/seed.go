// Package random provides the random sources used by dice and distributions.
//
// Sources fall into two groups. Default returns a process-wide source that is
// safe for concurrent use. New returns a seeded, deterministic source that must
// stay confined to one goroutine. NewSeed produces high-entropy seeds for the
// latter when the caller did not pin one.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
