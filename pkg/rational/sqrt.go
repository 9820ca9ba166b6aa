package rational

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// Sqrt represents a signed square root ±√x of a non-negative rational
// radicand x. The radicand is stored exactly; the root itself is only
// computed when a bounded approximation is requested, or when the radicand
// is a perfect square and the root is therefore rational.
//
// Magnitudes, Euclidean distances and areas are Sqrt values, which lets
// comparison-heavy call chains stay exact until a final answer is needed.
type Sqrt struct {
	radicand *big.Rat
	exact    *big.Rat // non-nil iff the radicand is a perfect rational square
	negative bool
}

// NewSqrt returns √x. It fails if the radicand is negative.
func NewSqrt(x *big.Rat) (Sqrt, error) {
	if x.Sign() < 0 {
		return Sqrt{}, errors.Newf("negative radicand %s", x.RatString())
	}
	r := new(big.Rat).Set(x)
	return Sqrt{radicand: r, exact: exactRoot(r)}, nil
}

// MustSqrt is NewSqrt for radicands known to be non-negative, such as sums
// of squares.
func MustSqrt(x *big.Rat) Sqrt {
	s, err := NewSqrt(x)
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	return s
}

// NewSqrtOf returns √(num/den).
func NewSqrtOf(num, den int64) (Sqrt, error) {
	if den == 0 {
		return Sqrt{}, errors.Newf("zero denominator")
	}
	return NewSqrt(big.NewRat(num, den))
}

// exactRoot returns the rational square root of x if both numerator and
// denominator are perfect squares, else nil.
func exactRoot(x *big.Rat) *big.Rat {
	if x.Sign() == 0 {
		return new(big.Rat)
	}
	num := x.Num()
	den := x.Denom()
	rn := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(rn, rn).Cmp(num) != 0 {
		return nil
	}
	rd := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(rd, rd).Cmp(den) != 0 {
		return nil
	}
	return new(big.Rat).SetFrac(rn, rd)
}

// Radicand returns a copy of the radicand.
func (s Sqrt) Radicand() *big.Rat {
	if s.radicand == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(s.radicand)
}

// Sign returns -1, 0 or +1.
func (s Sqrt) Sign() int {
	if s.radicand == nil || s.radicand.Sign() == 0 {
		return 0
	}
	if s.negative {
		return -1
	}
	return 1
}

// IsExact reports whether the value is rational.
func (s Sqrt) IsExact() bool {
	return s.radicand == nil || s.exact != nil
}

// Exact returns the exact rational value, if there is one.
func (s Sqrt) Exact() (*big.Rat, bool) {
	if s.radicand == nil {
		return new(big.Rat), true
	}
	if s.exact == nil {
		return nil, false
	}
	r := new(big.Rat).Set(s.exact)
	if s.negative {
		r.Neg(r)
	}
	return r, true
}

// Neg returns the value with its sign flipped.
func (s Sqrt) Neg() Sqrt {
	if s.Sign() == 0 {
		return s
	}
	return Sqrt{radicand: s.radicand, exact: s.exact, negative: !s.negative}
}

// Mul returns the exact product. √a·√b = √(ab), so products never lose
// exactness.
func (s Sqrt) Mul(o Sqrt) Sqrt {
	rad := new(big.Rat).Mul(s.Radicand(), o.Radicand())
	return Sqrt{
		radicand: rad,
		exact:    exactRoot(rad),
		negative: s.Sign()*o.Sign() < 0,
	}
}

// MulRat returns the exact product with a rational factor.
func (s Sqrt) MulRat(x *big.Rat) Sqrt {
	rad := new(big.Rat).Mul(x, x)
	rad.Mul(rad, s.Radicand())
	return Sqrt{
		radicand: rad,
		exact:    exactRoot(rad),
		negative: s.Sign()*x.Sign() < 0,
	}
}

// Div returns the exact quotient. Division by a zero root is a programmer
// error.
func (s Sqrt) Div(o Sqrt) Sqrt {
	if o.Sign() == 0 {
		panic(errors.AssertionFailedf("division by zero square root"))
	}
	rad := new(big.Rat).Quo(s.Radicand(), o.Radicand())
	return Sqrt{
		radicand: rad,
		exact:    exactRoot(rad),
		negative: s.Sign()*o.Sign() < 0,
	}
}

// Add returns the sum when it can be expressed exactly as a single signed
// root, reporting success. That is possible when either value is zero, or
// when the radicands differ by a perfect rational square factor
// (√2 + √8 = 3√2 = √18). Otherwise ok is false and callers must materialize
// both sides instead.
func (s Sqrt) Add(o Sqrt) (_ Sqrt, ok bool) {
	if s.Sign() == 0 {
		return o, true
	}
	if o.Sign() == 0 {
		return s, true
	}
	ratio := new(big.Rat).Quo(o.Radicand(), s.Radicand())
	k := exactRoot(ratio)
	if k == nil {
		return Sqrt{}, false
	}
	// value = sign(s)·√a + sign(o)·k·√a = c·√a
	c := big.NewRat(int64(s.Sign()), 1)
	c.Add(c, new(big.Rat).Mul(big.NewRat(int64(o.Sign()), 1), k))
	rad := new(big.Rat).Mul(c, c)
	rad.Mul(rad, s.radicand)
	return Sqrt{
		radicand: rad,
		exact:    exactRoot(rad),
		negative: c.Sign() < 0,
	}, true
}

// Cmp compares two values exactly. √ is monotonic over non-negative
// rationals, so comparing signs and then radicands decides every case
// without materialization.
func (s Sqrt) Cmp(o Sqrt) int {
	ss, so := s.Sign(), o.Sign()
	if ss != so {
		if ss < so {
			return -1
		}
		return 1
	}
	c := s.Radicand().Cmp(o.Radicand())
	if ss < 0 {
		return -c
	}
	return c
}

// Equal reports exact equality: same sign and same radicand.
func (s Sqrt) Equal(o Sqrt) bool {
	return s.Cmp(o) == 0
}

// CmpRat compares the value against an exact rational, exactly, by squaring.
func (s Sqrt) CmpRat(x *big.Rat) int {
	ss := s.Sign()
	xs := x.Sign()
	if ss != xs {
		if ss < xs {
			return -1
		}
		return 1
	}
	sq := new(big.Rat).Mul(x, x)
	c := s.Radicand().Cmp(sq)
	if ss < 0 {
		return -c
	}
	return c
}

// CmpAt compares two values through their materialized approximations at the
// given precision. Unlike Cmp this may report equality for values that
// differ by less than 10^OOM; it exists for callers that want the documented
// precision-bounded comparison semantics.
func (s Sqrt) CmpAt(o Sqrt, p Precision) int {
	return s.Rat(p).Cmp(o.Rat(p))
}

// Rat materializes the value as a rational within 10^OOM of the true value.
// The magnitude is rounded down (toward zero); the rounding policy applies
// only to decimal materialization via Decimal.
func (s Sqrt) Rat(p Precision) *big.Rat {
	if r, ok := s.Exact(); ok {
		return r
	}
	// √(n/d) = √(n·d)/d. Scaling numerator and denominator by 10^k bounds
	// the floor error by 1/(d·10^k) <= 10^OOM.
	scale := big.NewInt(1)
	if p.OOM < 0 {
		scale.Exp(big.NewInt(10), big.NewInt(int64(-p.OOM)), nil)
	}
	num := s.radicand.Num()
	den := s.radicand.Denom()
	n := new(big.Int).Mul(num, den)
	n.Mul(n, scale)
	n.Mul(n, scale)
	root := new(big.Int).Sqrt(n)
	r := new(big.Rat).SetFrac(root, new(big.Int).Mul(den, scale))
	if s.negative {
		r.Neg(r)
	}
	return r
}

// Decimal materializes the value as a decimal quantized at 10^OOM under the
// precision's rounding policy.
func (s Sqrt) Decimal(p Precision) *apd.Decimal {
	if r, ok := s.Exact(); ok {
		return Decimal(r, p)
	}
	ctx := p.context(s.radicand)
	// Digits of the root are about half those of the radicand; reuse the
	// radicand-sized context, which errs high.
	var num, den, quo, root, res apd.Decimal
	num.Coeff.SetMathBigInt(s.radicand.Num())
	den.Coeff.SetMathBigInt(s.radicand.Denom())
	if _, err := ctx.Quo(&quo, &num, &den); err != nil {
		panic(errors.AssertionFailedf("radicand to decimal conversion failed: %v", err))
	}
	if _, err := ctx.Sqrt(&root, &quo); err != nil {
		panic(errors.AssertionFailedf("decimal sqrt failed: %v", err))
	}
	if s.negative {
		root.Negative = true
	}
	if _, err := ctx.Quantize(&res, &root, int32(p.OOM)); err != nil {
		panic(errors.AssertionFailedf("quantize at oom %d failed: %v", p.OOM, err))
	}
	return &res
}

// String renders the exact value when there is one, else the symbolic form.
func (s Sqrt) String() string {
	if r, ok := s.Exact(); ok {
		return r.RatString()
	}
	sign := ""
	if s.negative {
		sign = "-"
	}
	return fmt.Sprintf("%ssqrt(%s)", sign, s.radicand.RatString())
}
