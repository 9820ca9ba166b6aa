package geometry

import (
	"math/big"

	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Point is a position, represented as an offset vector plus a relative
// vector. The effective position is their sum, computed lazily. The split
// exists so that translating a point, or a whole shape of points sharing an
// offset, only rewrites the offset and leaves the relative geometry alone.
//
// Equality is defined on effective positions: two points with different
// splits but the same sum are the same point. Points are immutable;
// Translate and Rotate return new values.
type Point struct {
	offset, rel Vector
}

// NewPoint creates a point at the given position, with a zero offset.
func NewPoint(position Vector) Point {
	return Point{rel: position}
}

// NewPointInts creates a point at integer coordinates.
func NewPointInts(x, y, z int64) Point {
	return Point{rel: NewVectorInts(x, y, z)}
}

// NewPointSplit creates a point with an explicit offset/relative split.
func NewPointSplit(offset, rel Vector) Point {
	return Point{offset: offset, rel: rel}
}

// Position returns the effective position, offset + relative.
func (p Point) Position() Vector {
	return p.offset.Add(p.rel)
}

// Offset returns the offset part of the split.
func (p Point) Offset() Vector { return p.offset }

// Relative returns the relative part of the split.
func (p Point) Relative() Vector { return p.rel }

// X returns the effective x coordinate.
func (p Point) X() *big.Rat { return new(big.Rat).Add(&p.offset.dx, &p.rel.dx) }

// Y returns the effective y coordinate.
func (p Point) Y() *big.Rat { return new(big.Rat).Add(&p.offset.dy, &p.rel.dy) }

// Z returns the effective z coordinate.
func (p Point) Z() *big.Rat { return new(big.Rat).Add(&p.offset.dz, &p.rel.dz) }

// Translate returns the point moved by v. Only the offset changes, so
// translating every point of a shape leaves their shared relative geometry
// untouched. Translation is exact: translating by v and then by -v returns
// the original point.
func (p Point) Translate(v Vector) Point {
	return Point{offset: p.offset.Add(v), rel: p.rel}
}

// Rotate returns the point rotated by theta radians about the given axis
// line. The result is rebased so that its offset is the axis anchor and its
// relative vector is the rotated arm. Rotation materializes sin/cos at the
// given precision and is therefore approximate.
func (p Point) Rotate(axis Line, theta *big.Rat, prec rational.Precision) (Point, error) {
	anchor := axis.anchor.Position()
	arm := p.Position().Sub(anchor)
	rotated, err := arm.Rotate(axis.dir, theta, prec)
	if err != nil {
		return Point{}, err
	}
	return Point{offset: anchor, rel: rotated}, nil
}

// VectorTo returns the exact displacement from p to other.
func (p Point) VectorTo(other Point) Vector {
	return other.Position().Sub(p.Position())
}

// DistanceSquaredTo returns the exact squared distance to another point.
func (p Point) DistanceSquaredTo(other Point) *big.Rat {
	return p.VectorTo(other).MagnitudeSquared()
}

// DistanceTo returns the distance to another point as a lazy square root.
func (p Point) DistanceTo(other Point) rational.Sqrt {
	return rational.MustSqrt(p.DistanceSquaredTo(other))
}

// Equal reports exactly whether the effective positions coincide,
// independent of how each point splits offset and relative.
func (p Point) Equal(other Point) bool {
	return p.Position().Equal(other.Position())
}

// EqualAt reports whether the effective positions coincide within the
// precision's error bound, componentwise. Required when exact points are
// compared against points produced by an approximated rotation or unit
// vector.
func (p Point) EqualAt(other Point, prec rational.Precision) bool {
	return p.Position().EqualAt(other.Position(), prec)
}

// Collinear reports exactly whether all given points lie on a common line.
// Fewer than three points are always collinear.
func Collinear(points ...Point) bool {
	if len(points) < 3 {
		return true
	}
	// First point with a non-zero displacement from points[0] fixes the
	// reference direction; every other displacement must be parallel to it.
	var ref Vector
	haveRef := false
	for _, q := range points[1:] {
		d := points[0].VectorTo(q)
		if d.IsZero() {
			continue
		}
		if !haveRef {
			ref = d
			haveRef = true
			continue
		}
		if !ref.IsScalarMultipleOf(d) {
			return false
		}
	}
	return true
}

// String renders the effective position.
func (p Point) String() string {
	return p.Position().String()
}
