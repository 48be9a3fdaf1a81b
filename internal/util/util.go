// Package util provides small shared helpers for the txpad CLI: size
// constants, human-readable size formatting, and secure buffer wiping.
// All helpers are stateless and thread-safe.
package util

import (
	"crypto/subtle"
	"fmt"
)

// Size constants for byte calculations.
const (
	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30
	TiB = 1 << 40
)

// Sizeify converts bytes to a human-readable string (B, KiB, MiB, GiB, TiB).
func Sizeify(size int64) string {
	switch {
	case size >= TiB:
		return fmt.Sprintf("%.2f TiB", float64(size)/float64(TiB))
	case size >= GiB:
		return fmt.Sprintf("%.2f GiB", float64(size)/float64(GiB))
	case size >= MiB:
		return fmt.Sprintf("%.2f MiB", float64(size)/float64(MiB))
	case size >= KiB:
		return fmt.Sprintf("%.2f KiB", float64(size)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// SecureZero overwrites a byte slice with zeros so plaintext does not
// persist in memory longer than needed. Go's garbage collector and
// compiler optimizations mean complete erasure cannot be guaranteed, but
// subtle.ConstantTimeCopy prevents the write from being optimized away.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}
