package mathutil

import "math"

// CheckedAdd returns x + y, failing with ErrOverflow instead of wrapping.
func CheckedAdd(x, y uint64) (uint64, error) {
	if x > math.MaxUint64-y {
		return 0, ErrOverflow
	}
	return x + y, nil
}

// CheckedSub returns x - y, failing with ErrNegative instead of wrapping.
func CheckedSub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrNegative
	}
	return x - y, nil
}
