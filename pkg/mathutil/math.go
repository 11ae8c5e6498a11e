package mathutil

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// ScalePrecision is the number of decimal places of the fixed-point scale
// used by all scaled accumulators (reward-per-unit, share price).
const ScalePrecision = 18

// Scale is the fixed-point multiplier 10^18 as decimal.Decimal.
var Scale = decimal.New(1, ScalePrecision)

var (
	// ErrOverflow is returned when a result does not fit in a uint64.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrNegative is returned when converting a negative value to uint64.
	ErrNegative = errors.New("negative amount")
)

// FromUint64 converts a uint64 amount to decimal.Decimal without loss.
func FromUint64(x uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
}

// ToUint64 converts an integer-valued decimal back to uint64, failing closed
// on negative values, fractional values and anything above MaxUint64.
func ToUint64(x decimal.Decimal) (uint64, error) {
	if x.Sign() < 0 {
		return 0, ErrNegative
	}
	truncated := x.Truncate(0)
	if !truncated.Equal(x) {
		return 0, ErrOverflow
	}
	b := truncated.BigInt()
	if !b.IsUint64() {
		return 0, ErrOverflow
	}
	return b.Uint64(), nil
}

// MulDivTrunc computes x * y / z with exact integer arithmetic, truncating
// the quotient towards zero. The remainder is discarded on purpose: every
// truncation in the ledger math is a deterministic under-collection bias.
func MulDivTrunc(x, y, z decimal.Decimal) decimal.Decimal {
	q, _ := x.Mul(y).QuoRem(z, 0)
	return q
}
