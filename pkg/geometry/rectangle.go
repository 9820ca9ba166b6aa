package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Rectangle is the bounded planar region spanned by two orthogonal edge
// vectors at a corner. It need not be axis-aligned.
type Rectangle struct {
	corner Point
	u, v   Vector
}

// NewRectangle creates a rectangle from a corner and two edge vectors. The
// edges must be non-zero and orthogonal; anything else is a degenerate
// construction and fails fast.
func NewRectangle(corner Point, u, v Vector) (Rectangle, error) {
	if u.IsZero() || v.IsZero() {
		return Rectangle{}, errors.Newf("rectangle with zero edge vector")
	}
	if !u.IsOrthogonalTo(v) {
		return Rectangle{}, errors.Newf("rectangle edges %s and %s are not orthogonal", u, v)
	}
	return Rectangle{corner: corner, u: u, v: v}, nil
}

// NewRectangleFromPoints creates a rectangle from four coplanar corners in
// traversal order p, p+u, p+u+v, p+v.
func NewRectangleFromPoints(p, q, r, s Point) (Rectangle, error) {
	u := p.VectorTo(q)
	v := p.VectorTo(s)
	rect, err := NewRectangle(p, u, v)
	if err != nil {
		return Rectangle{}, err
	}
	if !r.Equal(p.Translate(u.Add(v))) {
		return Rectangle{}, errors.Newf("corner %s does not close the rectangle", r)
	}
	return rect, nil
}

// Corner returns the anchor corner.
func (r Rectangle) Corner() Point { return r.corner }

// U returns the first edge vector.
func (r Rectangle) U() Vector { return r.u }

// V returns the second edge vector.
func (r Rectangle) V() Vector { return r.v }

// Vertices returns the four corners in traversal order.
func (r Rectangle) Vertices() [4]Point {
	return [4]Point{
		r.corner,
		r.corner.Translate(r.u),
		r.corner.Translate(r.u.Add(r.v)),
		r.corner.Translate(r.v),
	}
}

// Edges returns the four boundary segments in traversal order.
func (r Rectangle) Edges() [4]LineSegment {
	vs := r.Vertices()
	return [4]LineSegment{
		{p: vs[0], q: vs[1]},
		{p: vs[1], q: vs[2]},
		{p: vs[2], q: vs[3]},
		{p: vs[3], q: vs[0]},
	}
}

// Centroid returns the exact center.
func (r Rectangle) Centroid() Point {
	return r.corner.Translate(r.u.Add(r.v).Scale(big.NewRat(1, 2)))
}

// Plane returns the plane containing the rectangle.
func (r Rectangle) Plane() Plane {
	return Plane{anchor: r.corner, u: r.u, v: r.v}
}

// Area returns the exact area as a lazy square root, √(|u|²·|v|²).
func (r Rectangle) Area() rational.Sqrt {
	return r.u.Magnitude().Mul(r.v.Magnitude())
}

// Perimeter returns the perimeter materialized at the given precision.
func (r Rectangle) Perimeter(p rational.Precision) *big.Rat {
	sum := new(big.Rat).Add(r.u.Magnitude().Rat(p), r.v.Magnitude().Rat(p))
	return sum.Mul(sum, big.NewRat(2, 1))
}

// Envelope returns the axis-aligned bounding box of the corners.
func (r Rectangle) Envelope() Envelope {
	vs := r.Vertices()
	return mustEnvelopeOfPoints(vs[:]...)
}

// ContainsPoint reports exactly whether the point lies in the rectangle,
// boundary included.
func (r Rectangle) ContainsPoint(p Point) bool {
	return r.Plane().ContainsPoint(p) && r.containsCoplanar(p)
}

// containsCoplanar tests a point already on the rectangle's plane by its
// exact projections onto the orthogonal edges: both must land in range.
func (r Rectangle) containsCoplanar(p Point) bool {
	w := r.corner.VectorTo(p)
	du := w.Dot(r.u)
	if du.Sign() < 0 || du.Cmp(r.u.MagnitudeSquared()) > 0 {
		return false
	}
	dv := w.Dot(r.v)
	return dv.Sign() >= 0 && dv.Cmp(r.v.MagnitudeSquared()) <= 0
}

// IntersectLine returns the intersection with a line: nil, a Point, or a
// LineSegment when the line is coplanar.
func (r Rectangle) IntersectLine(l Line) Geometry {
	switch g := r.Plane().IntersectLine(l).(type) {
	case nil:
		return nil
	case Point:
		if r.containsCoplanar(g) {
			return g
		}
		return nil
	case Line:
		edges := r.Edges()
		return clipCoplanarLine(edges[:], l)
	default:
		panic(errors.AssertionFailedf("unexpected plane/line intersection %T", g))
	}
}

// IntersectRay returns the intersection with a ray: nil, a Point, or a
// LineSegment when the ray is coplanar.
func (r Rectangle) IntersectRay(ray Ray) Geometry {
	switch g := r.Plane().IntersectRay(ray).(type) {
	case nil:
		return nil
	case Point:
		if r.containsCoplanar(g) {
			return g
		}
		return nil
	case Ray:
		edges := r.Edges()
		return clipCoplanarRay(r.containsCoplanar, edges[:], ray)
	default:
		panic(errors.AssertionFailedf("unexpected plane/ray intersection %T", g))
	}
}

// IntersectSegment returns the intersection with a segment: nil, a Point,
// or a LineSegment when the segment is coplanar. Envelopes are compared
// first for a cheap exact rejection.
func (r Rectangle) IntersectSegment(s LineSegment) Geometry {
	if !r.Envelope().Intersects(s.Envelope()) {
		return nil
	}
	switch g := r.Plane().IntersectSegment(s).(type) {
	case nil:
		return nil
	case Point:
		if r.containsCoplanar(g) {
			return g
		}
		return nil
	case LineSegment:
		edges := r.Edges()
		return clipCoplanarSegment(r.containsCoplanar, edges[:], s)
	default:
		panic(errors.AssertionFailedf("unexpected plane/segment intersection %T", g))
	}
}

// String renders the corner and edge vectors.
func (r Rectangle) String() string {
	return fmt.Sprintf("rectangle{%s + %s + %s}", r.corner, r.u, r.v)
}
