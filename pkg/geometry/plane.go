package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Plane is an infinite plane spanned by two independent vectors at an
// anchor point. The normal is the cross product of the spanning vectors.
type Plane struct {
	anchor Point
	u, v   Vector
}

// NewPlane creates a plane from an anchor and two spanning vectors. The
// vectors must be independent: a zero cross product is a degenerate
// construction and fails fast.
func NewPlane(anchor Point, u, v Vector) (Plane, error) {
	if u.Cross(v).IsZero() {
		return Plane{}, errors.Newf("plane with parallel spanning vectors %s and %s", u, v)
	}
	return Plane{anchor: anchor, u: u, v: v}, nil
}

// NewPlaneThroughPoints creates the plane through three non-collinear
// points.
func NewPlaneThroughPoints(a, b, c Point) (Plane, error) {
	if Collinear(a, b, c) {
		return Plane{}, errors.Newf("plane through collinear points %s, %s, %s", a, b, c)
	}
	return Plane{anchor: a, u: a.VectorTo(b), v: a.VectorTo(c)}, nil
}

// Anchor returns the anchor point.
func (pl Plane) Anchor() Point { return pl.anchor }

// U returns the first spanning vector.
func (pl Plane) U() Vector { return pl.u }

// V returns the second spanning vector.
func (pl Plane) V() Vector { return pl.v }

// Normal returns the exact normal vector, u × v.
func (pl Plane) Normal() Vector {
	return pl.u.Cross(pl.v)
}

// sideOfPoint returns the sign of normal · (p − anchor): 0 on the plane,
// ±1 on either side.
func (pl Plane) sideOfPoint(p Point) int {
	return pl.Normal().Dot(pl.anchor.VectorTo(p)).Sign()
}

// ContainsPoint reports exactly whether the point lies on the plane.
func (pl Plane) ContainsPoint(p Point) bool {
	return pl.sideOfPoint(p) == 0
}

// ContainsLine reports exactly whether the whole line lies in the plane.
func (pl Plane) ContainsLine(l Line) bool {
	return pl.ContainsPoint(l.anchor) && pl.Normal().IsOrthogonalTo(l.dir)
}

// IsParallelTo reports exactly whether the planes' normals are scalar
// multiples. Coincident planes are parallel.
func (pl Plane) IsParallelTo(other Plane) bool {
	return pl.Normal().IsScalarMultipleOf(other.Normal())
}

// Equal reports exactly whether both represent the same plane.
func (pl Plane) Equal(other Plane) bool {
	return pl.IsParallelTo(other) && pl.ContainsPoint(other.anchor)
}

// IntersectLine returns the intersection with a line: the whole Line when
// it lies in the plane, a Point, or nil when the line is parallel to the
// plane at a distance.
//
// Substituting the line's parametric point into the plane equation gives
// normal·dir as the coefficient of t; a zero coefficient means parallel,
// otherwise t has a unique exact solution.
func (pl Plane) IntersectLine(l Line) Geometry {
	n := pl.Normal()
	denom := n.Dot(l.dir)
	if denom.Sign() == 0 {
		if pl.ContainsPoint(l.anchor) {
			return l
		}
		return nil
	}
	t := n.Dot(l.anchor.VectorTo(pl.anchor))
	t.Quo(t, denom)
	return l.At(t)
}

// IntersectRay returns the intersection with a ray: the whole Ray when it
// lies in the plane, a Point, or nil.
func (pl Plane) IntersectRay(r Ray) Geometry {
	switch g := pl.IntersectLine(r.Line()).(type) {
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
		panic(errors.AssertionFailedf("unexpected plane/line intersection %T", g))
	}
}

// IntersectSegment returns the intersection with a segment: the whole
// segment when it lies in the plane, a Point, or nil.
func (pl Plane) IntersectSegment(s LineSegment) Geometry {
	if s.IsDegenerate() {
		if pl.ContainsPoint(s.p) {
			return s.p
		}
		return nil
	}
	sl, err := s.Line()
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	switch g := pl.IntersectLine(sl).(type) {
	case nil:
		return nil
	case Line:
		return s
	case Point:
		if s.ContainsPoint(g) {
			return g
		}
		return nil
	default:
		panic(errors.AssertionFailedf("unexpected plane/line intersection %T", g))
	}
}

// IntersectPlane returns the intersection of two planes: the shared Plane
// when they coincide, a Line when they cross, nil when parallel-distinct.
func (pl Plane) IntersectPlane(other Plane) Geometry {
	n1 := pl.Normal()
	n2 := other.Normal()
	dir := n1.Cross(n2)
	if dir.IsZero() {
		if pl.ContainsPoint(other.anchor) {
			return pl
		}
		return nil
	}
	// A point on both planes: with plane constants d_i = n_i·anchor_i,
	// p = ((d1·n2 − d2·n1) × dir) / |dir|².
	d1 := n1.Dot(pl.anchor.Position())
	d2 := n2.Dot(other.anchor.Position())
	w := n2.Scale(d1).Sub(n1.Scale(d2))
	p := w.Cross(dir).DivScale(dir.MagnitudeSquared())
	return mustLine(NewPoint(p), dir)
}

// DistanceSquaredToPoint returns the exact squared distance from the point
// to the plane, (normal·(p−anchor))² / |normal|².
func (pl Plane) DistanceSquaredToPoint(p Point) *big.Rat {
	n := pl.Normal()
	d := n.Dot(pl.anchor.VectorTo(p))
	num := new(big.Rat).Mul(d, d)
	return num.Quo(num, n.MagnitudeSquared())
}

// DistanceToPoint returns the distance from the point to the plane.
func (pl Plane) DistanceToPoint(p Point) rational.Sqrt {
	return rational.MustSqrt(pl.DistanceSquaredToPoint(p))
}

// String renders the plane as anchor and spanning vectors.
func (pl Plane) String() string {
	return fmt.Sprintf("plane{%s + s*%s + t*%s}", pl.anchor, pl.u, pl.v)
}
