package geometry

import (
	"math/big"

	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Geometry is the polymorphic result of an intersection query. The concrete
// type encodes the dimensionality of the result: a Point, a LineSegment, a
// whole Line or Ray, a Plane, a Triangle, or a convex Polygon. A nil
// Geometry means no intersection, which is an expected outcome, never an
// error.
//
// Callers type-switch on the result:
//
//	switch g := a.IntersectLine(l).(type) {
//	case nil:         // no intersection
//	case Point:       // single point
//	case LineSegment: // 1D overlap
//	}
type Geometry interface {
	isGeometry()
}

func (Point) isGeometry()       {}
func (Line) isGeometry()        {}
func (Ray) isGeometry()         {}
func (LineSegment) isGeometry() {}
func (Plane) isGeometry()       {}
func (Triangle) isGeometry()    {}
func (Polygon) isGeometry()     {}

// Polygon is an ordered convex coplanar vertex list. It is produced when a
// volumetric clip yields a planar section with more than three corners.
type Polygon struct {
	vertices []Point
}

// NewPolygon creates a polygon from vertices already in traversal order.
func NewPolygon(vertices []Point) Polygon {
	vs := make([]Point, len(vertices))
	copy(vs, vertices)
	return Polygon{vertices: vs}
}

// Vertices returns a copy of the vertex list in traversal order.
func (pg Polygon) Vertices() []Point {
	vs := make([]Point, len(pg.vertices))
	copy(vs, pg.vertices)
	return vs
}

// dedupPoints removes exact duplicates, preserving first-seen order.
func dedupPoints(points []Point) []Point {
	out := points[:0:0]
	for _, p := range points {
		dup := false
		for _, q := range out {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// dedupPointsAt removes duplicates that coincide within the precision's
// error bound, preserving first-seen order.
func dedupPointsAt(points []Point, prec rational.Precision) []Point {
	out := points[:0:0]
	for _, p := range points {
		dup := false
		for _, q := range out {
			if p.EqualAt(q, prec) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// extremesAlong returns the two points with minimal and maximal parameter
// along dir from origin. The points need not be on a common line; the
// parameter is the scalar projection onto dir.
func extremesAlong(origin Point, dir Vector, points []Point) (lo, hi Point) {
	lo, hi = points[0], points[0]
	loT := origin.VectorTo(points[0]).Dot(dir)
	hiT := new(big.Rat).Set(loT)
	for _, p := range points[1:] {
		t := origin.VectorTo(p).Dot(dir)
		if t.Cmp(loT) < 0 {
			lo, loT = p, t
		}
		if t.Cmp(hiT) > 0 {
			hi, hiT = p, t
		}
	}
	return lo, hi
}

// spanOf assembles the minimal connected geometry covering a set of
// collinear points: nil for none, the point itself for one, else the
// segment between the extremes along dir.
func spanOf(points []Point, dir Vector) Geometry {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return points[0]
	}
	lo, hi := extremesAlong(points[0], dir, points)
	if lo.Equal(hi) {
		return lo
	}
	return NewLineSegment(lo, hi)
}

// appendGeometryPoints decomposes a point or segment intersection result
// into its defining points. Other variants are ignored.
func appendGeometryPoints(points []Point, g Geometry) []Point {
	switch g := g.(type) {
	case Point:
		points = append(points, g)
	case LineSegment:
		points = append(points, g.p, g.q)
	}
	return points
}

// orderConvex orders coplanar boundary points of a convex region
// counterclockwise about their centroid, as seen along the plane normal.
// The comparison is exact: points are bucketed into half-turns about a
// reference direction and ordered within a half by the orientation sign.
func orderConvex(points []Point, normal Vector) []Point {
	n := len(points)
	if n <= 2 {
		return points
	}
	// Centroid of boundary points of a 2D convex region is interior.
	sum := Vector{}
	for _, p := range points {
		sum = sum.Add(p.Position())
	}
	centroid := sum.DivScale(big.NewRat(int64(n), 1))

	arms := make([]Vector, n)
	for i, p := range points {
		arms[i] = p.Position().Sub(centroid)
	}
	ref := arms[0]

	half := func(a Vector) int {
		s := ref.Cross(a).Dot(normal).Sign()
		if s > 0 {
			return 0
		}
		if s < 0 {
			return 1
		}
		// Parallel to the reference: angle 0 opens the first half, angle
		// pi opens the second.
		if ref.Dot(a).Sign() > 0 {
			return 0
		}
		return 1
	}

	ordered := make([]Point, n)
	copy(ordered, points)
	armOf := func(p Point) Vector { return p.Position().Sub(centroid) }
	less := func(p, q Point) bool {
		a, b := armOf(p), armOf(q)
		ha, hb := half(a), half(b)
		if ha != hb {
			return ha < hb
		}
		return a.Cross(b).Dot(normal).Sign() > 0
	}
	// Insertion sort; sections have at most a handful of corners.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(ordered[j], ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}
