// Package rational provides the numeric layer for the geometry kernel:
// an explicit precision context (order of magnitude plus rounding policy),
// rounding of exact rationals to that context, and a lazy square-root type
// that stays symbolic until a bounded approximation is requested.
//
// Exact values are big.Rat throughout. Approximate output is apd.Decimal,
// quantized to 10^OOM under the context's rounding policy.
package rational

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// Rounding is the tie-breaking rule applied when a value is materialized at
// a given order of magnitude.
type Rounding = apd.Rounder

// Supported rounding policies.
const (
	RoundHalfUp   Rounding = apd.RoundHalfUp
	RoundHalfDown Rounding = apd.RoundHalfDown
	RoundHalfEven Rounding = apd.RoundHalfEven
	RoundUp       Rounding = apd.RoundUp
	RoundDown     Rounding = apd.RoundDown
	RoundFloor    Rounding = apd.RoundFloor
	RoundCeiling  Rounding = apd.RoundCeiling
)

// Precision bounds how far a materialized approximation may deviate from the
// true value. OOM is an order of magnitude: a materialized result is a
// multiple of 10^OOM, so more negative OOM retains more fractional digits.
// Rounding picks the representable value when the true value is not one.
//
// Two values whose true difference exceeds 10^OOM always compare correctly
// after materialization at this precision; values closer than that may be
// identified. That is the documented contract, not an accuracy bug.
type Precision struct {
	OOM      int
	Rounding Rounding
}

// Prec returns a Precision at the given order of magnitude with half-up
// rounding.
func Prec(oom int) Precision {
	return Precision{OOM: oom, Rounding: RoundHalfUp}
}

// Epsilon returns 10^OOM, the materialization error bound.
func (p Precision) Epsilon() *big.Rat {
	return powTen(p.OOM)
}

// powTen returns 10^k as a rational, for k of either sign.
func powTen(k int) *big.Rat {
	abs := k
	if abs < 0 {
		abs = -abs
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil)
	if k < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), pow)
	}
	return new(big.Rat).SetInt(pow)
}

// decimalDigits estimates the number of decimal digits of a big.Int,
// erring high. 2^10 > 10^3, so bits*0.302 is a safe per-bit factor.
func decimalDigits(x *big.Int) int {
	return x.BitLen()*302/1000 + 1
}

// context returns an apd context with this precision's rounding policy and
// enough working digits to cover the integer part of x plus the fractional
// digits requested by OOM, with guard digits.
func (p Precision) context(x *big.Rat) *apd.Context {
	digits := decimalDigits(x.Num()) - decimalDigits(x.Denom())
	if digits < 1 {
		digits = 1
	}
	if p.OOM < 0 {
		digits += -p.OOM
	}
	ctx := apd.BaseContext.WithPrecision(uint32(digits + 4))
	ctx.Rounding = p.Rounding
	return ctx
}

// Decimal converts an exact rational to a decimal quantized at 10^OOM under
// the rounding policy.
func Decimal(x *big.Rat, p Precision) *apd.Decimal {
	ctx := p.context(x)
	var num, den, quo, res apd.Decimal
	num.Coeff.SetMathBigInt(new(big.Int).Abs(x.Num()))
	num.Negative = x.Sign() < 0
	den.Coeff.SetMathBigInt(x.Denom())
	if _, err := ctx.Quo(&quo, &num, &den); err != nil {
		panic(errors.AssertionFailedf("rational to decimal conversion failed: %v", err))
	}
	if _, err := ctx.Quantize(&res, &quo, int32(p.OOM)); err != nil {
		panic(errors.AssertionFailedf("quantize at oom %d failed: %v", p.OOM, err))
	}
	return &res
}

// RoundRat rounds an exact rational to a multiple of 10^OOM under the
// rounding policy. The result is exact as a rational; only the conversion is
// lossy.
func RoundRat(x *big.Rat, p Precision) *big.Rat {
	return RatFromDecimal(Decimal(x, p))
}

// RatFromDecimal converts a finite decimal back to an exact rational.
func RatFromDecimal(d *apd.Decimal) *big.Rat {
	coeff := d.Coeff.MathBigInt()
	r := new(big.Rat).SetInt(coeff)
	r.Mul(r, powTen(int(d.Exponent)))
	if d.Negative {
		r.Neg(r)
	}
	return r
}

// WithinEpsilon reports whether |a-b| < 10^OOM. This is the equality notion
// used when exact values are compared against previously approximated ones.
func WithinEpsilon(a, b *big.Rat, p Precision) bool {
	diff := new(big.Rat).Sub(a, b)
	return diff.Abs(diff).Cmp(p.Epsilon()) < 0
}
