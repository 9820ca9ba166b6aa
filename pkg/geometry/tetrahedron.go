package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Tetrahedron is the solid with four non-coplanar corners, bounded by four
// triangular faces. Faces are derived accessors, not stored.
type Tetrahedron struct {
	a, b, c, d Point
}

// NewTetrahedron creates a tetrahedron from four corners. Coplanar corners
// span no volume and fail fast.
func NewTetrahedron(a, b, c, d Point) (Tetrahedron, error) {
	t := Tetrahedron{a: a, b: b, c: c, d: d}
	if t.signedVolume().Sign() == 0 {
		return Tetrahedron{}, errors.Newf("tetrahedron with coplanar corners %s, %s, %s, %s", a, b, c, d)
	}
	return t, nil
}

// Vertices returns the four corners.
func (t Tetrahedron) Vertices() (a, b, c, d Point) {
	return t.a, t.b, t.c, t.d
}

// Faces returns the four triangular faces. Each face is generated from the
// corner set; the face at index i is opposite the i-th corner.
func (t Tetrahedron) Faces() [4]Triangle {
	return [4]Triangle{
		{a: t.b, b: t.c, c: t.d},
		{a: t.a, b: t.c, c: t.d},
		{a: t.a, b: t.b, c: t.d},
		{a: t.a, b: t.b, c: t.c},
	}
}

// Edges returns the six edge segments.
func (t Tetrahedron) Edges() [6]LineSegment {
	return [6]LineSegment{
		{p: t.a, q: t.b},
		{p: t.a, q: t.c},
		{p: t.a, q: t.d},
		{p: t.b, q: t.c},
		{p: t.b, q: t.d},
		{p: t.c, q: t.d},
	}
}

// Centroid returns the exact centroid.
func (t Tetrahedron) Centroid() Point {
	sum := t.a.Position().Add(t.b.Position()).Add(t.c.Position()).Add(t.d.Position())
	return NewPoint(sum.DivScale(big.NewRat(4, 1)))
}

// signedVolume returns det(b−a, c−a, d−a) / 6.
func (t Tetrahedron) signedVolume() *big.Rat {
	ab := t.a.VectorTo(t.b)
	ac := t.a.VectorTo(t.c)
	ad := t.a.VectorTo(t.d)
	det := ab.Cross(ac).Dot(ad)
	return det.Quo(det, big.NewRat(6, 1))
}

// Volume returns the exact volume. Unlike areas and lengths, the volume of
// a tetrahedron with rational corners is rational.
func (t Tetrahedron) Volume() *big.Rat {
	v := t.signedVolume()
	return v.Abs(v)
}

// SurfaceArea returns the total face area materialized at the given
// precision.
func (t Tetrahedron) SurfaceArea(p rational.Precision) *big.Rat {
	sum := new(big.Rat)
	for _, f := range t.Faces() {
		sum.Add(sum, f.Area().Rat(p))
	}
	return sum
}

// Envelope returns the axis-aligned bounding box of the corners.
func (t Tetrahedron) Envelope() Envelope {
	return mustEnvelopeOfPoints(t.a, t.b, t.c, t.d)
}

// ContainsPoint reports exactly whether the point lies in the solid,
// boundary included: for every face, the point must be on the same side as
// the opposite corner, or on the face plane itself.
func (t Tetrahedron) ContainsPoint(p Point) bool {
	opposites := [4]Point{t.a, t.b, t.c, t.d}
	for i, f := range t.Faces() {
		pl := f.Plane()
		side := pl.sideOfPoint(p)
		if side == 0 {
			continue
		}
		if side != pl.sideOfPoint(opposites[i]) {
			return false
		}
	}
	return true
}

// IntersectLine returns the clip of a line to the solid: nil, a Point, or a
// LineSegment. The solid is convex, so the boundary crossings collected
// from the four faces bound the covered interval.
func (t Tetrahedron) IntersectLine(l Line) Geometry {
	var points []Point
	for _, f := range t.Faces() {
		points = appendGeometryPoints(points, f.IntersectLine(l))
	}
	return spanOf(dedupPoints(points), l.dir)
}

// IntersectSegment returns the clip of a segment to the solid: nil, a
// Point, or a LineSegment. Envelopes are compared first for a cheap exact
// rejection.
func (t Tetrahedron) IntersectSegment(s LineSegment) Geometry {
	if !t.Envelope().Intersects(s.Envelope()) {
		return nil
	}
	if s.IsDegenerate() {
		if t.ContainsPoint(s.p) {
			return s.p
		}
		return nil
	}
	var points []Point
	if t.ContainsPoint(s.p) {
		points = append(points, s.p)
	}
	if t.ContainsPoint(s.q) {
		points = append(points, s.q)
	}
	for _, f := range t.Faces() {
		points = appendGeometryPoints(points, f.IntersectSegment(s))
	}
	return spanOf(dedupPoints(points), s.p.VectorTo(s.q))
}

// IntersectPlane returns the planar section of the solid: nil, a Point, a
// LineSegment, a Triangle, or a convex four-sided Polygon. Corners on the
// plane and edge crossings are assembled, de-duplicated at the given
// precision, and ordered with an exact convexity comparator.
func (t Tetrahedron) IntersectPlane(pl Plane, prec rational.Precision) Geometry {
	corners := [4]Point{t.a, t.b, t.c, t.d}
	var sides [4]int
	for i, c := range corners {
		sides[i] = pl.sideOfPoint(c)
	}

	var points []Point
	for i, c := range corners {
		if sides[i] == 0 {
			points = append(points, c)
		}
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if sides[i]*sides[j] < 0 {
				seg := LineSegment{p: corners[i], q: corners[j]}
				points = appendGeometryPoints(points, pl.IntersectSegment(seg))
			}
		}
	}
	return assembleSection(points, pl.Normal(), prec)
}

// IntersectTriangle returns the clip of a triangle to the solid: nil, a
// Point, a LineSegment, a Triangle, or a convex Polygon. Every corner of
// the clipped region is a triangle corner inside the solid, a solid corner
// on the triangle, or a boundary/boundary crossing; the candidates are
// assembled like a planar section. Envelopes are compared first.
func (t Tetrahedron) IntersectTriangle(tri Triangle, prec rational.Precision) Geometry {
	if !t.Envelope().Intersects(tri.Envelope()) {
		return nil
	}
	var points []Point
	ta, tb, tc := tri.Vertices()
	for _, v := range [3]Point{ta, tb, tc} {
		if t.ContainsPoint(v) {
			points = append(points, v)
		}
	}
	for _, c := range [4]Point{t.a, t.b, t.c, t.d} {
		if tri.ContainsPoint(c) {
			points = append(points, c)
		}
	}
	for _, e := range tri.Edges() {
		points = appendGeometryPoints(points, t.IntersectSegment(e))
	}
	for _, e := range t.Edges() {
		points = appendGeometryPoints(points, tri.IntersectSegment(e))
	}
	return assembleSection(points, tri.Plane().Normal(), prec)
}

// assembleSection builds the minimal connected geometry covering coplanar
// boundary points of a convex region: nil, the point, the segment between
// the extremes when collinear, a triangle, or a convex polygon.
func assembleSection(points []Point, normal Vector, prec rational.Precision) Geometry {
	points = dedupPointsAt(dedupPoints(points), prec)
	switch len(points) {
	case 0:
		return nil
	case 1:
		return points[0]
	case 2:
		return LineSegment{p: points[0], q: points[1]}
	}
	if Collinear(points...) {
		dir := points[0].VectorTo(points[1])
		return spanOf(points, dir)
	}
	ordered := orderConvex(points, normal)
	if len(ordered) == 3 {
		return mustTriangle(ordered[0], ordered[1], ordered[2])
	}
	return Polygon{vertices: ordered}
}

// String renders the corners.
func (t Tetrahedron) String() string {
	return fmt.Sprintf("tetrahedron{%s, %s, %s, %s}", t.a, t.b, t.c, t.d)
}
