// Package geometry implements exact 3D geometric primitives and the
// containment, intersection and distance queries between them.
//
// Coordinates are arbitrary-precision rationals, so every predicate that is
// decidable over the rationals (parallelism, collinearity, orthogonality,
// membership, intersection of flats) is answered exactly, with no epsilon
// tuning. Irrational quantities such as Euclidean magnitudes are carried
// symbolically as rational.Sqrt values and materialized only on demand under
// an explicit rational.Precision contract.
package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Vector is an exact 3D displacement. The zero value is the zero vector.
// Vectors are immutable values; all operations return new vectors.
type Vector struct {
	dx, dy, dz big.Rat
}

// NewVector creates a vector from exact rational components. The inputs are
// copied.
func NewVector(dx, dy, dz *big.Rat) Vector {
	var v Vector
	v.dx.Set(dx)
	v.dy.Set(dy)
	v.dz.Set(dz)
	return v
}

// NewVectorInts creates a vector from integer components.
func NewVectorInts(dx, dy, dz int64) Vector {
	var v Vector
	v.dx.SetInt64(dx)
	v.dy.SetInt64(dy)
	v.dz.SetInt64(dz)
	return v
}

// DX returns a copy of the x component.
func (v Vector) DX() *big.Rat { return new(big.Rat).Set(&v.dx) }

// DY returns a copy of the y component.
func (v Vector) DY() *big.Rat { return new(big.Rat).Set(&v.dy) }

// DZ returns a copy of the z component.
func (v Vector) DZ() *big.Rat { return new(big.Rat).Set(&v.dz) }

// comps returns the components for read-only use within the package.
func (v Vector) comps() [3]*big.Rat {
	return [3]*big.Rat{&v.dx, &v.dy, &v.dz}
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	var r Vector
	r.dx.Add(&v.dx, &other.dx)
	r.dy.Add(&v.dy, &other.dy)
	r.dz.Add(&v.dz, &other.dz)
	return r
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(other Vector) Vector {
	var r Vector
	r.dx.Sub(&v.dx, &other.dx)
	r.dy.Sub(&v.dy, &other.dy)
	r.dz.Sub(&v.dz, &other.dz)
	return r
}

// Neg returns the vector with all components negated.
func (v Vector) Neg() Vector {
	var r Vector
	r.dx.Neg(&v.dx)
	r.dy.Neg(&v.dy)
	r.dz.Neg(&v.dz)
	return r
}

// Scale returns the vector scaled by an exact rational factor.
func (v Vector) Scale(s *big.Rat) Vector {
	var r Vector
	r.dx.Mul(&v.dx, s)
	r.dy.Mul(&v.dy, s)
	r.dz.Mul(&v.dz, s)
	return r
}

// DivScale returns the vector divided by an exact rational factor. Dividing
// by zero is a programmer error.
func (v Vector) DivScale(s *big.Rat) Vector {
	if s.Sign() == 0 {
		panic(errors.AssertionFailedf("vector division by zero scalar"))
	}
	inv := new(big.Rat).Inv(s)
	return v.Scale(inv)
}

// Dot returns the exact dot product.
func (v Vector) Dot(other Vector) *big.Rat {
	sum := new(big.Rat).Mul(&v.dx, &other.dx)
	sum.Add(sum, new(big.Rat).Mul(&v.dy, &other.dy))
	sum.Add(sum, new(big.Rat).Mul(&v.dz, &other.dz))
	return sum
}

// Cross returns the exact cross product.
func (v Vector) Cross(other Vector) Vector {
	var r Vector
	r.dx.Sub(new(big.Rat).Mul(&v.dy, &other.dz), new(big.Rat).Mul(&v.dz, &other.dy))
	r.dy.Sub(new(big.Rat).Mul(&v.dz, &other.dx), new(big.Rat).Mul(&v.dx, &other.dz))
	r.dz.Sub(new(big.Rat).Mul(&v.dx, &other.dy), new(big.Rat).Mul(&v.dy, &other.dx))
	return r
}

// MagnitudeSquared returns the exact squared magnitude. Prefer it over
// Magnitude wherever a comparison is all that is needed.
func (v Vector) MagnitudeSquared() *big.Rat {
	return v.Dot(v)
}

// Magnitude returns the magnitude as a lazy square root.
func (v Vector) Magnitude() rational.Sqrt {
	return rational.MustSqrt(v.MagnitudeSquared())
}

// Unit returns a vector of approximately unit length in the same direction,
// dividing by the magnitude materialized at the given precision. When the
// magnitude is a perfect rational square the result is exactly unit length.
// The zero vector is returned unchanged.
func (v Vector) Unit(p rational.Precision) Vector {
	m := v.Magnitude()
	if m.Sign() == 0 {
		return Vector{}
	}
	if exact, ok := m.Exact(); ok {
		return v.DivScale(exact)
	}
	return v.DivScale(m.Rat(p))
}

// IsZero reports exactly whether this is the zero vector.
func (v Vector) IsZero() bool {
	return v.dx.Sign() == 0 && v.dy.Sign() == 0 && v.dz.Sign() == 0
}

// IsScalarMultipleOf reports exactly whether the two vectors are parallel,
// i.e. their cross product is the zero vector. The zero vector is a scalar
// multiple of every vector.
func (v Vector) IsScalarMultipleOf(other Vector) bool {
	return v.Cross(other).IsZero()
}

// IsOrthogonalTo reports exactly whether the dot product is zero.
func (v Vector) IsOrthogonalTo(other Vector) bool {
	return v.Dot(other).Sign() == 0
}

// Equal reports exact componentwise equality.
func (v Vector) Equal(other Vector) bool {
	return v.dx.Cmp(&other.dx) == 0 && v.dy.Cmp(&other.dy) == 0 && v.dz.Cmp(&other.dz) == 0
}

// EqualAt reports componentwise equality within the precision's error bound.
func (v Vector) EqualAt(other Vector, p rational.Precision) bool {
	return rational.WithinEpsilon(&v.dx, &other.dx, p) &&
		rational.WithinEpsilon(&v.dy, &other.dy, p) &&
		rational.WithinEpsilon(&v.dz, &other.dz, p)
}

// Rotate returns the vector rotated by theta radians about the given axis
// using Rodrigues' formula. The axis must be non-zero; it is normalized at
// the given precision, and sin/cos are series approximations at that
// precision, so the result is approximate by the usual contract.
func (v Vector) Rotate(axis Vector, theta *big.Rat, p rational.Precision) (Vector, error) {
	if axis.IsZero() {
		return Vector{}, errors.Newf("rotation about the zero vector")
	}
	k := axis.Unit(p)
	sin, cos := rational.SinCos(theta, p)

	// v' = v·cosθ + (k×v)·sinθ + k·(k·v)(1−cosθ)
	oneMinusCos := new(big.Rat).Sub(big.NewRat(1, 1), cos)
	r := v.Scale(cos)
	r = r.Add(k.Cross(v).Scale(sin))
	r = r.Add(k.Scale(new(big.Rat).Mul(k.Dot(v), oneMinusCos)))
	return r, nil
}

// String renders the components exactly.
func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.dx.RatString(), v.dy.RatString(), v.dz.RatString())
}
