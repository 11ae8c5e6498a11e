package domain

import (
	"encoding/hex"

	"github.com/feevault-network/feevault-daemon/pkg/mathutil"
)

const (
	// FeeDivisor is the fee rate expressed as divisor: 1/1000 of the trade
	// input amount, i.e. 0.1%. Integer division truncates, so the fee
	// systematically under-collects by the remainder.
	FeeDivisor uint64 = 1000
)

// Scale is the fixed-point multiplier (10^18) shared by the reward-per-unit
// accumulator and the escrow share price.
var Scale = mathutil.Scale

func isValidAsset(asset string) bool {
	buf, err := hex.DecodeString(asset)
	if err != nil {
		return false
	}
	return len(buf) == 32
}
