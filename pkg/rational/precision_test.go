package rational

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecision_Epsilon(t *testing.T) {
	require.Equal(t, "1/1000", Prec(-3).Epsilon().RatString())
	require.Equal(t, "100", Prec(2).Epsilon().RatString())
	require.Equal(t, "1", Prec(0).Epsilon().RatString())
}

func TestDecimal_Quantize(t *testing.T) {
	tests := []struct {
		name     string
		value    *big.Rat
		prec     Precision
		expected string
	}{
		{
			name:     "third rounded half up at -6",
			value:    big.NewRat(1, 3),
			prec:     Prec(-6),
			expected: "0.333333",
		},
		{
			name:     "two thirds rounds up",
			value:    big.NewRat(2, 3),
			prec:     Prec(-6),
			expected: "0.666667",
		},
		{
			name:     "two thirds rounds down under floor policy",
			value:    big.NewRat(2, 3),
			prec:     Precision{OOM: -6, Rounding: RoundFloor},
			expected: "0.666666",
		},
		{
			name:     "negative half at 0 rounds away from zero",
			value:    big.NewRat(-1, 2),
			prec:     Prec(0),
			expected: "-1",
		},
		{
			name:     "coarse positive oom",
			value:    big.NewRat(1234, 1),
			prec:     Prec(1),
			expected: "1.23E+3",
		},
		{
			name:     "exact value passes through",
			value:    big.NewRat(5, 4),
			prec:     Prec(-2),
			expected: "1.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Decimal(tt.value, tt.prec).String())
		})
	}
}

func TestRoundRat(t *testing.T) {
	got := RoundRat(big.NewRat(2, 3), Prec(-4))
	require.Equal(t, "6667/10000", got.RatString())

	got = RoundRat(big.NewRat(-2, 3), Prec(-4))
	require.Equal(t, "-6667/10000", got.RatString())
}

func TestWithinEpsilon(t *testing.T) {
	p := Prec(-6)
	a := big.NewRat(1, 1)

	closeBy := new(big.Rat).Add(a, big.NewRat(1, 10000000)) // 1e-7 apart
	require.True(t, WithinEpsilon(a, closeBy, p))

	farOff := new(big.Rat).Add(a, big.NewRat(1, 100000)) // 1e-5 apart
	require.False(t, WithinEpsilon(a, farOff, p))

	// The bound is strict: exactly 10^OOM apart is not "within".
	onBound := new(big.Rat).Add(a, big.NewRat(1, 1000000))
	require.False(t, WithinEpsilon(a, onBound, p))
}
