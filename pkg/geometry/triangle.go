package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Triangle is the bounded planar region with three non-collinear corners.
type Triangle struct {
	a, b, c Point
}

// NewTriangle creates a triangle from three corners. Collinear corners are
// a degenerate construction and fail fast.
func NewTriangle(a, b, c Point) (Triangle, error) {
	if Collinear(a, b, c) {
		return Triangle{}, errors.Newf("triangle with collinear corners %s, %s, %s", a, b, c)
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// mustTriangle wraps NewTriangle for corners already proven non-collinear.
func mustTriangle(a, b, c Point) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	return t
}

// Vertices returns the three corners.
func (t Triangle) Vertices() (a, b, c Point) {
	return t.a, t.b, t.c
}

// Plane returns the plane containing the triangle.
func (t Triangle) Plane() Plane {
	return Plane{anchor: t.a, u: t.a.VectorTo(t.b), v: t.a.VectorTo(t.c)}
}

// Edges returns the three boundary segments.
func (t Triangle) Edges() [3]LineSegment {
	return [3]LineSegment{
		{p: t.a, q: t.b},
		{p: t.b, q: t.c},
		{p: t.c, q: t.a},
	}
}

// Centroid returns the exact centroid.
func (t Triangle) Centroid() Point {
	sum := t.a.Position().Add(t.b.Position()).Add(t.c.Position())
	return NewPoint(sum.DivScale(big.NewRat(3, 1)))
}

// Area returns the exact area as a lazy square root: half the magnitude of
// the edge cross product.
func (t Triangle) Area() rational.Sqrt {
	cross := t.a.VectorTo(t.b).Cross(t.a.VectorTo(t.c))
	return cross.Magnitude().MulRat(big.NewRat(1, 2))
}

// Perimeter returns the perimeter materialized at the given precision. Each
// edge length is an independent root, so the sum is approximate.
func (t Triangle) Perimeter(p rational.Precision) *big.Rat {
	sum := new(big.Rat)
	for _, e := range t.Edges() {
		sum.Add(sum, e.Length().Rat(p))
	}
	return sum
}

// Envelope returns the axis-aligned bounding box of the corners.
func (t Triangle) Envelope() Envelope {
	return mustEnvelopeOfPoints(t.a, t.b, t.c)
}

// ContainsPoint reports exactly whether the point lies in the triangle,
// boundary included. A point off the plane is outside; a point produced by
// approximate arithmetic that lands within the approximation error outside
// an edge is therefore classified as outside.
func (t Triangle) ContainsPoint(p Point) bool {
	pl := t.Plane()
	return pl.ContainsPoint(p) && t.containsCoplanar(p)
}

// containsCoplanar is the boundary-inclusive edge-sign test for a point
// already on the triangle's plane: walking the boundary, the cross product
// of each edge with the vector to the point must not change sign.
func (t Triangle) containsCoplanar(p Point) bool {
	n := t.Plane().Normal()
	corners := [3]Point{t.a, t.b, t.c}
	pos, neg := false, false
	for i := range corners {
		v0 := corners[i]
		v1 := corners[(i+1)%3]
		s := v0.VectorTo(v1).Cross(v0.VectorTo(p)).Dot(n).Sign()
		if s > 0 {
			pos = true
		} else if s < 0 {
			neg = true
		}
	}
	return !(pos && neg)
}

// IntersectLine returns the intersection with a line: nil, a Point, or a
// LineSegment when the line is coplanar and crosses the region (or runs
// along an edge).
func (t Triangle) IntersectLine(l Line) Geometry {
	switch g := t.Plane().IntersectLine(l).(type) {
	case nil:
		return nil
	case Point:
		if t.containsCoplanar(g) {
			return g
		}
		return nil
	case Line:
		edges := t.Edges()
		return clipCoplanarLine(edges[:], l)
	default:
		panic(errors.AssertionFailedf("unexpected plane/line intersection %T", g))
	}
}

// IntersectRay returns the intersection with a ray: nil, a Point, or a
// LineSegment when the ray is coplanar.
func (t Triangle) IntersectRay(r Ray) Geometry {
	switch g := t.Plane().IntersectRay(r).(type) {
	case nil:
		return nil
	case Point:
		if t.containsCoplanar(g) {
			return g
		}
		return nil
	case Ray:
		edges := t.Edges()
		return clipCoplanarRay(t.containsCoplanar, edges[:], r)
	default:
		panic(errors.AssertionFailedf("unexpected plane/ray intersection %T", g))
	}
}

// IntersectSegment returns the intersection with a segment: nil, a Point,
// or a LineSegment when the segment is coplanar. Envelopes are compared
// first for a cheap exact rejection.
func (t Triangle) IntersectSegment(s LineSegment) Geometry {
	if !t.Envelope().Intersects(s.Envelope()) {
		return nil
	}
	switch g := t.Plane().IntersectSegment(s).(type) {
	case nil:
		return nil
	case Point:
		if t.containsCoplanar(g) {
			return g
		}
		return nil
	case LineSegment:
		edges := t.Edges()
		return clipCoplanarSegment(t.containsCoplanar, edges[:], s)
	default:
		panic(errors.AssertionFailedf("unexpected plane/segment intersection %T", g))
	}
}

// IntersectPlane returns the intersection with a plane: nil, a Point, a
// LineSegment, or the whole Triangle when the planes coincide.
func (t Triangle) IntersectPlane(pl Plane) Geometry {
	switch g := t.Plane().IntersectPlane(pl).(type) {
	case nil:
		return nil
	case Plane:
		return t
	case Line:
		return t.IntersectLine(g)
	default:
		panic(errors.AssertionFailedf("unexpected plane/plane intersection %T", g))
	}
}

// Equal reports exactly whether two triangles have the same corner set.
func (t Triangle) Equal(other Triangle) bool {
	mine := [3]Point{t.a, t.b, t.c}
	theirs := [3]Point{other.a, other.b, other.c}
	for _, p := range mine {
		found := false
		for _, q := range theirs {
			if p.Equal(q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// String renders the corners.
func (t Triangle) String() string {
	return fmt.Sprintf("triangle{%s, %s, %s}", t.a, t.b, t.c)
}
