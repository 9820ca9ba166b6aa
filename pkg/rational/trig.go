package rational

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// Arbitrary-precision trigonometry over rationals, used by the geometry
// layer for rotations. Results are approximations rounded at the requested
// precision; there is no exact representation of sin/cos of a rational angle
// other than at zero.

const maxSeriesTerms = 1000

// Pi returns π rounded at the given precision, computed with Machin's
// formula: π = 16·atan(1/5) − 4·atan(1/239).
func Pi(p Precision) *big.Rat {
	eps := powTen(p.OOM - 2)
	pi := new(big.Rat).Mul(big.NewRat(16, 1), atanInv(5, eps))
	pi.Sub(pi, new(big.Rat).Mul(big.NewRat(4, 1), atanInv(239, eps)))
	return RoundRat(pi, p)
}

// atanInv sums the Leibniz series for atan(1/x) until the next term drops
// below eps. The series alternates, so the tail is bounded by the first
// omitted term.
func atanInv(x int64, eps *big.Rat) *big.Rat {
	sum := new(big.Rat)
	xsq := big.NewRat(1, x*x)
	term := big.NewRat(1, x)
	for k := 0; ; k++ {
		if k >= maxSeriesTerms {
			panic(errors.AssertionFailedf("atan series did not converge"))
		}
		contrib := new(big.Rat).Mul(term, big.NewRat(1, int64(2*k+1)))
		if absRat(contrib).Cmp(eps) < 0 {
			break
		}
		if k%2 == 1 {
			contrib.Neg(contrib)
		}
		sum.Add(sum, contrib)
		term.Mul(term, xsq)
	}
	return sum
}

// SinCos returns sin(theta) and cos(theta) for an angle in radians, each
// rounded at the given precision. The angle is first reduced modulo 2π using
// π at guard precision, so very large angles lose accuracy proportional to
// the number of whole turns removed.
func SinCos(theta *big.Rat, p Precision) (sin, cos *big.Rat) {
	guard := Precision{OOM: p.OOM - 6, Rounding: p.Rounding}
	twoPi := new(big.Rat).Mul(big.NewRat(2, 1), Pi(guard))

	// Reduce to [-π, π].
	turns := new(big.Rat).Quo(new(big.Rat).Set(theta), twoPi)
	turns.Add(turns, big.NewRat(1, 2))
	whole := new(big.Int).Div(turns.Num(), turns.Denom())
	t := new(big.Rat).Sub(theta, new(big.Rat).Mul(new(big.Rat).SetInt(whole), twoPi))

	eps := powTen(p.OOM - 2)
	sin, cos = new(big.Rat), big.NewRat(1, 1)
	// Shared Taylor recurrence: term_{n+1} = -term_n · t² / ((n+1)(n+2)).
	tsq := new(big.Rat).Mul(t, t)
	sinTerm := new(big.Rat).Set(t)
	cosTerm := big.NewRat(1, 1)
	sin.Set(sinTerm)
	for n := 1; ; n++ {
		if n >= maxSeriesTerms {
			panic(errors.AssertionFailedf("sin/cos series did not converge"))
		}
		cosTerm.Mul(cosTerm, tsq)
		cosTerm.Quo(cosTerm, big.NewRat(int64(2*n-1)*int64(2*n), 1))
		cosTerm.Neg(cosTerm)
		cos.Add(cos, cosTerm)

		sinTerm.Mul(sinTerm, tsq)
		sinTerm.Quo(sinTerm, big.NewRat(int64(2*n)*int64(2*n+1), 1))
		sinTerm.Neg(sinTerm)
		sin.Add(sin, sinTerm)

		if absRat(sinTerm).Cmp(eps) < 0 && absRat(cosTerm).Cmp(eps) < 0 {
			break
		}
	}
	return RoundRat(sin, p), RoundRat(cos, p)
}

func absRat(x *big.Rat) *big.Rat {
	return new(big.Rat).Abs(x)
}
