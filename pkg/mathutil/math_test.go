package mathutil_test

import (
	"math"
	"testing"

	"github.com/feevault-network/feevault-daemon/pkg/mathutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUint64RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []uint64{0, 1, 1000, math.MaxUint64} {
		d := mathutil.FromUint64(v)
		back, err := mathutil.ToUint64(d)
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
}

func TestToUint64FailsClosed(t *testing.T) {
	t.Parallel()

	_, err := mathutil.ToUint64(decimal.NewFromInt(-1))
	require.ErrorIs(t, err, mathutil.ErrNegative)

	tooBig := mathutil.FromUint64(math.MaxUint64).Add(decimal.NewFromInt(1))
	_, err = mathutil.ToUint64(tooBig)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestMulDivTrunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y, z  uint64
		expected uint64
	}{
		{"exact", 50, 1000, 10, 5000},
		{"truncates", 7, 3, 2, 10},
		{"scaled_injection", 50, 1_000_000_000_000_000_000, 1000, 50_000_000_000_000_000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mathutil.MulDivTrunc(
				mathutil.FromUint64(tt.x),
				mathutil.FromUint64(tt.y),
				mathutil.FromUint64(tt.z),
			)
			v, err := mathutil.ToUint64(got)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestMulDivTruncBeyondUint64(t *testing.T) {
	t.Parallel()

	// volume * rewardPerUnit overflows uint64 but the intermediate product
	// must stay exact.
	volume := mathutil.FromUint64(math.MaxUint64)
	got := mathutil.MulDivTrunc(volume, mathutil.Scale, mathutil.Scale)
	v, err := mathutil.ToUint64(got)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)
}

func TestCheckedAdd(t *testing.T) {
	t.Parallel()

	v, err := mathutil.CheckedAdd(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), v)

	_, err = mathutil.CheckedAdd(math.MaxUint64, 1)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestCheckedSub(t *testing.T) {
	t.Parallel()

	v, err := mathutil.CheckedSub(3, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)

	_, err = mathutil.CheckedSub(2, 3)
	require.ErrorIs(t, err, mathutil.ErrNegative)
}
