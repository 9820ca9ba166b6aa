package rational

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPi(t *testing.T) {
	// 3.14159265358979... rounds half-up to 3.1415926536 at -10.
	pi := Pi(Prec(-10))
	require.Equal(t, "3926990817/1250000000", pi.RatString())

	coarse := Pi(Prec(-2))
	require.Equal(t, "157/50", coarse.RatString()) // 3.14
}

func TestSinCos(t *testing.T) {
	p := Prec(-12)
	check := Prec(-10)

	tests := []struct {
		name    string
		theta   *big.Rat
		wantSin *big.Rat
		wantCos *big.Rat
	}{
		{
			name:    "zero",
			theta:   new(big.Rat),
			wantSin: new(big.Rat),
			wantCos: big.NewRat(1, 1),
		},
		{
			name:    "right angle",
			theta:   new(big.Rat).Quo(Pi(Prec(-20)), big.NewRat(2, 1)),
			wantSin: big.NewRat(1, 1),
			wantCos: new(big.Rat),
		},
		{
			name:    "half turn",
			theta:   Pi(Prec(-20)),
			wantSin: new(big.Rat),
			wantCos: big.NewRat(-1, 1),
		},
		{
			name:    "full turn reduces",
			theta:   new(big.Rat).Mul(big.NewRat(2, 1), Pi(Prec(-20))),
			wantSin: new(big.Rat),
			wantCos: big.NewRat(1, 1),
		},
		{
			name:    "negative right angle",
			theta:   new(big.Rat).Quo(Pi(Prec(-20)), big.NewRat(-2, 1)),
			wantSin: big.NewRat(-1, 1),
			wantCos: new(big.Rat),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sin, cos := SinCos(tt.theta, p)
			require.True(t, WithinEpsilon(sin, tt.wantSin, check),
				"sin=%s want~%s", sin.RatString(), tt.wantSin.RatString())
			require.True(t, WithinEpsilon(cos, tt.wantCos, check),
				"cos=%s want~%s", cos.RatString(), tt.wantCos.RatString())
		})
	}
}

func TestSinCos_PythagoreanIdentity(t *testing.T) {
	p := Prec(-15)
	sin, cos := SinCos(big.NewRat(1, 1), p)
	sum := new(big.Rat).Mul(sin, sin)
	sum.Add(sum, new(big.Rat).Mul(cos, cos))
	require.True(t, WithinEpsilon(sum, big.NewRat(1, 1), Prec(-12)),
		"sin^2+cos^2=%s", sum.RatString())
}
