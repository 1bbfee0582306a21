package services

import (
	"time"

	"github.com/specialistvlad/stangrid/internal/argtree"
)

// seedEpoch is the fixed origin clock-derived seeds are measured from.
var seedEpoch = time.Date(1400, time.January, 1, 0, 0, 0, 0, time.UTC)

// ResolveSeed returns the seed to run with. A seed left at its schema
// default is replaced by the milliseconds elapsed since seedEpoch according
// to now, truncated to 32 bits.
func ResolveSeed(seed *argtree.Leaf[uint], now func() time.Time) uint32 {
	if !seed.IsDefault() {
		return uint32(seed.Value())
	}
	// time.Time.Sub saturates after ~292 years, so work in Unix milliseconds.
	elapsed := now().UnixMilli() - seedEpoch.UnixMilli()
	return uint32(uint64(elapsed))
}
