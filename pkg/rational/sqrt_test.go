package rational

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSqrt(t *testing.T) {
	_, err := NewSqrt(big.NewRat(-1, 4))
	require.Error(t, err)

	s, err := NewSqrt(big.NewRat(2, 1))
	require.NoError(t, err)
	require.Equal(t, "2", s.Radicand().RatString())
	require.Equal(t, 1, s.Sign())
	require.False(t, s.IsExact())
}

func TestSqrt_Exact(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		exact    string
		ok       bool
	}{
		{name: "perfect integer square", num: 9, den: 1, exact: "3", ok: true},
		{name: "perfect rational square", num: 4, den: 25, exact: "2/5", ok: true},
		{name: "zero", num: 0, den: 1, exact: "0", ok: true},
		{name: "irrational", num: 2, den: 1, ok: false},
		{name: "square numerator only", num: 4, den: 3, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSqrtOf(tt.num, tt.den)
			require.NoError(t, err)
			r, ok := s.Exact()
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.exact, r.RatString())
			}
		})
	}
}

func TestSqrt_MulDiv(t *testing.T) {
	sqrt2 := MustSqrt(big.NewRat(2, 1))
	sqrt8 := MustSqrt(big.NewRat(8, 1))

	// sqrt2 * sqrt8 = sqrt16 = 4, exactly.
	prod := sqrt2.Mul(sqrt8)
	r, ok := prod.Exact()
	require.True(t, ok)
	require.Equal(t, "4", r.RatString())

	// sqrt8 / sqrt2 = sqrt4 = 2.
	quo := sqrt8.Div(sqrt2)
	r, ok = quo.Exact()
	require.True(t, ok)
	require.Equal(t, "2", r.RatString())

	// Scaling by -1/2: sqrt8 * -1/2 = -sqrt2.
	scaled := sqrt8.MulRat(big.NewRat(-1, 2))
	require.Equal(t, -1, scaled.Sign())
	require.Equal(t, "2", scaled.Radicand().RatString())
}

func TestSqrt_Add(t *testing.T) {
	sqrt2 := MustSqrt(big.NewRat(2, 1))
	sqrt8 := MustSqrt(big.NewRat(8, 1))
	sqrt3 := MustSqrt(big.NewRat(3, 1))

	// sqrt2 + sqrt8 = 3*sqrt2 = sqrt18.
	sum, ok := sqrt2.Add(sqrt8)
	require.True(t, ok)
	require.Equal(t, "18", sum.Radicand().RatString())

	// sqrt8 - sqrt2 = sqrt2.
	diff, ok := sqrt8.Add(sqrt2.Neg())
	require.True(t, ok)
	require.True(t, diff.Equal(sqrt2))

	// sqrt2 - sqrt2 = 0.
	zero, ok := sqrt2.Add(sqrt2.Neg())
	require.True(t, ok)
	require.Equal(t, 0, zero.Sign())

	// sqrt2 + sqrt3 has no single-root form.
	_, ok = sqrt2.Add(sqrt3)
	require.False(t, ok)

	// Adding zero is always exact.
	sum, ok = sqrt3.Add(MustSqrt(new(big.Rat)))
	require.True(t, ok)
	require.True(t, sum.Equal(sqrt3))
}

func TestSqrt_Cmp(t *testing.T) {
	sqrt2 := MustSqrt(big.NewRat(2, 1))
	sqrt3 := MustSqrt(big.NewRat(3, 1))

	require.Equal(t, -1, sqrt2.Cmp(sqrt3))
	require.Equal(t, 1, sqrt3.Cmp(sqrt2))
	require.Equal(t, 0, sqrt2.Cmp(sqrt2))
	require.Equal(t, -1, sqrt3.Neg().Cmp(sqrt2.Neg()))
	require.Equal(t, -1, sqrt2.Neg().Cmp(sqrt2))

	// Against rationals: sqrt2 is between 1.414213 and 1.414214.
	require.Equal(t, 1, sqrt2.CmpRat(big.NewRat(1414213, 1000000)))
	require.Equal(t, -1, sqrt2.CmpRat(big.NewRat(1414214, 1000000)))
	require.Equal(t, 0, MustSqrt(big.NewRat(9, 4)).CmpRat(big.NewRat(3, 2)))
}

func TestSqrt_Decimal(t *testing.T) {
	sqrt2 := MustSqrt(big.NewRat(2, 1))

	tests := []struct {
		name     string
		prec     Precision
		expected string
	}{
		{name: "half up at -6", prec: Prec(-6), expected: "1.414214"},
		{name: "floor at -6", prec: Precision{OOM: -6, Rounding: RoundFloor}, expected: "1.414213"},
		{name: "half up at -2", prec: Prec(-2), expected: "1.41"},
		{name: "coarse at 0", prec: Prec(0), expected: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, sqrt2.Decimal(tt.prec).String())
		})
	}

	// Negative roots materialize with their sign.
	require.Equal(t, "-1.414214", sqrt2.Neg().Decimal(Prec(-6)).String())
	// Exact roots are unaffected by the policy.
	require.Equal(t, "1.500000", MustSqrt(big.NewRat(9, 4)).Decimal(Prec(-6)).String())
}

func TestSqrt_Rat(t *testing.T) {
	sqrt2 := MustSqrt(big.NewRat(2, 1))
	p := Prec(-10)

	approx := sqrt2.Rat(p)
	// The approximation must be within 10^-10 of the true value:
	// approx <= sqrt2 < approx + eps.
	require.LessOrEqual(t, sqrt2.CmpRat(new(big.Rat).Add(approx, p.Epsilon())), 0)
	require.GreaterOrEqual(t, sqrt2.CmpRat(approx), 0)

	// Exact values come back exactly regardless of precision.
	require.Equal(t, "3/2", MustSqrt(big.NewRat(9, 4)).Rat(Prec(0)).RatString())
}

func TestSqrt_CmpAt(t *testing.T) {
	// sqrt(2) and sqrt(2.000000000001) differ by ~3.5e-13: tell them apart
	// at oom -14, identify them at oom -6. This is the documented contract.
	a := MustSqrt(big.NewRat(2, 1))
	b := MustSqrt(big.NewRat(2000000000001, 1000000000000))

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, -1, a.CmpAt(b, Prec(-14)))
	require.Equal(t, 0, a.CmpAt(b, Prec(-6)))
}

func TestSqrt_String(t *testing.T) {
	require.Equal(t, "sqrt(2)", MustSqrt(big.NewRat(2, 1)).String())
	require.Equal(t, "-sqrt(2/3)", MustSqrt(big.NewRat(2, 3)).Neg().String())
	require.Equal(t, "3/2", MustSqrt(big.NewRat(9, 4)).String())
	require.Equal(t, "0", Sqrt{}.String())
}
