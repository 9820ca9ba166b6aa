package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Ray is a half-line: the points start + t·direction for t >= 0.
type Ray struct {
	start Point
	dir   Vector
}

// NewRay creates a ray from a start point and a direction. A zero direction
// is a degenerate construction and fails fast.
func NewRay(start Point, dir Vector) (Ray, error) {
	if dir.IsZero() {
		return Ray{}, errors.Newf("ray with zero direction vector")
	}
	return Ray{start: start, dir: dir}, nil
}

// Start returns the start point.
func (r Ray) Start() Point { return r.start }

// Direction returns the direction vector.
func (r Ray) Direction() Vector { return r.dir }

// Line returns the infinite line underlying the ray.
func (r Ray) Line() Line {
	return Line{anchor: r.start, dir: r.dir}
}

// ContainsPoint reports exactly whether the point lies on the half-line.
func (r Ray) ContainsPoint(p Point) bool {
	w := r.start.VectorTo(p)
	return w.IsScalarMultipleOf(r.dir) && w.Dot(r.dir).Sign() >= 0
}

// IntersectLine returns the intersection with an infinite line: the whole
// Ray when the line contains it, a Point, or nil.
func (r Ray) IntersectLine(l Line) Geometry {
	switch g := r.Line().IntersectLine(l).(type) {
	case nil:
		return nil
	case Line:
		return r
	case Point:
		if r.ContainsPoint(g) {
			return g
		}
		return nil
	default:
		panic(errors.AssertionFailedf("unexpected line intersection %T", g))
	}
}

// IntersectRay returns the intersection of two rays.
//
// When the underlying lines cross it is the crossing point if both
// half-line constraints admit it. When the rays are collinear the result
// follows a trichotomy: rays pointing the same way overlap in the ray whose
// start is further along the shared direction; rays pointing opposite ways
// overlap in the segment between their starts, collapse to a single point
// when the starts coincide, or miss entirely once the starts have passed
// each other.
func (r Ray) IntersectRay(other Ray) Geometry {
	switch g := r.Line().IntersectLine(other.Line()).(type) {
	case nil:
		return nil
	case Point:
		if r.ContainsPoint(g) && other.ContainsPoint(g) {
			return g
		}
		return nil
	case Line:
		along := r.start.VectorTo(other.start).Dot(r.dir)
		if r.dir.Dot(other.dir).Sign() > 0 {
			// Same direction: the more advanced start wins.
			if along.Sign() > 0 {
				return Ray{start: other.start, dir: r.dir}
			}
			return r
		}
		// Opposite directions.
		switch along.Sign() {
		case 1:
			return NewLineSegment(r.start, other.start)
		case 0:
			return r.start
		default:
			return nil
		}
	default:
		panic(errors.AssertionFailedf("unexpected line intersection %T", g))
	}
}

// IntersectSegment returns the intersection with a segment: nil, a Point,
// or the overlapping sub-segment when collinear.
func (r Ray) IntersectSegment(s LineSegment) Geometry {
	return s.IntersectRay(r)
}

// DistanceSquaredToPoint returns the exact squared distance from the point
// to the half-line: the projection is clamped at the start.
func (r Ray) DistanceSquaredToPoint(p Point) *big.Rat {
	w := r.start.VectorTo(p)
	if w.Dot(r.dir).Sign() <= 0 {
		return w.MagnitudeSquared()
	}
	return r.Line().DistanceSquaredToPoint(p)
}

// DistanceToPoint returns the distance from the point to the half-line.
func (r Ray) DistanceToPoint(p Point) rational.Sqrt {
	return rational.MustSqrt(r.DistanceSquaredToPoint(p))
}

// Equal reports exactly whether two rays have the same start and the same
// oriented direction.
func (r Ray) Equal(other Ray) bool {
	return r.start.Equal(other.start) &&
		r.dir.IsScalarMultipleOf(other.dir) &&
		r.dir.Dot(other.dir).Sign() > 0
}

// String renders the ray as start and direction.
func (r Ray) String() string {
	return fmt.Sprintf("ray{%s + t*%s, t>=0}", r.start, r.dir)
}
