package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// LineSegment is the line bounded by two endpoints. Coincident endpoints
// are allowed and describe a degenerate point-like segment.
type LineSegment struct {
	p, q Point
}

// NewLineSegment creates a segment between two points.
func NewLineSegment(p, q Point) LineSegment {
	return LineSegment{p: p, q: q}
}

// P returns the first endpoint.
func (s LineSegment) P() Point { return s.p }

// Q returns the second endpoint.
func (s LineSegment) Q() Point { return s.q }

// IsDegenerate reports whether the endpoints coincide.
func (s LineSegment) IsDegenerate() bool {
	return s.p.Equal(s.q)
}

// Line returns the infinite line through the segment. It fails for a
// degenerate segment, which determines no direction.
func (s LineSegment) Line() (Line, error) {
	return NewLineThroughPoints(s.p, s.q)
}

// LengthSquared returns the exact squared length.
func (s LineSegment) LengthSquared() *big.Rat {
	return s.p.DistanceSquaredTo(s.q)
}

// Length returns the length as a lazy square root.
func (s LineSegment) Length() rational.Sqrt {
	return rational.MustSqrt(s.LengthSquared())
}

// Midpoint returns the exact midpoint.
func (s LineSegment) Midpoint() Point {
	return s.p.Translate(s.p.VectorTo(s.q).Scale(big.NewRat(1, 2)))
}

// Envelope returns the axis-aligned bounding box of the endpoints.
func (s LineSegment) Envelope() Envelope {
	return mustEnvelopeOfPoints(s.p, s.q)
}

// ContainsPoint reports exactly whether the point lies on the segment,
// endpoints included.
func (s LineSegment) ContainsPoint(pt Point) bool {
	if s.IsDegenerate() {
		return s.p.Equal(pt)
	}
	d := s.p.VectorTo(s.q)
	w := s.p.VectorTo(pt)
	if !w.IsScalarMultipleOf(d) {
		return false
	}
	t := w.Dot(d)
	return t.Sign() >= 0 && t.Cmp(d.MagnitudeSquared()) <= 0
}

// paramClip clips the closed parameter interval [lo, hi] (parameters along
// this segment's own direction, where p is 0 and q is 1) and assembles the
// covered geometry.
func (s LineSegment) paramClip(lo, hi *big.Rat) Geometry {
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if lo.Cmp(zero) < 0 {
		lo = zero
	}
	if hi.Cmp(one) > 0 {
		hi = one
	}
	switch lo.Cmp(hi) {
	case 1:
		return nil
	case 0:
		return s.at(lo)
	}
	return LineSegment{p: s.at(lo), q: s.at(hi)}
}

// at returns the point at parameter t in [0, 1].
func (s LineSegment) at(t *big.Rat) Point {
	return s.p.Translate(s.p.VectorTo(s.q).Scale(t))
}

// IntersectLine returns the intersection with an infinite line: the whole
// segment when collinear, a Point, or nil.
func (s LineSegment) IntersectLine(l Line) Geometry {
	if s.IsDegenerate() {
		if l.ContainsPoint(s.p) {
			return s.p
		}
		return nil
	}
	sl, err := s.Line()
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	switch g := sl.IntersectLine(l).(type) {
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
		panic(errors.AssertionFailedf("unexpected line intersection %T", g))
	}
}

// IntersectRay returns the intersection with a ray: nil, a Point, or the
// overlapping sub-segment when collinear.
func (s LineSegment) IntersectRay(r Ray) Geometry {
	if s.IsDegenerate() {
		if r.ContainsPoint(s.p) {
			return s.p
		}
		return nil
	}
	sl, err := s.Line()
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	switch g := sl.IntersectLine(r.Line()).(type) {
	case nil:
		return nil
	case Point:
		if s.ContainsPoint(g) && r.ContainsPoint(g) {
			return g
		}
		return nil
	case Line:
		// Collinear: the ray covers the parameters on one side of its
		// start, in the orientation of this segment.
		d := s.p.VectorTo(s.q)
		t0 := new(big.Rat).Quo(s.p.VectorTo(r.start).Dot(d), d.MagnitudeSquared())
		if r.dir.Dot(d).Sign() > 0 {
			return s.paramClip(t0, big.NewRat(1, 1))
		}
		return s.paramClip(new(big.Rat), t0)
	default:
		panic(errors.AssertionFailedf("unexpected line intersection %T", g))
	}
}

// IntersectSegment returns the intersection of two segments: nil, a Point,
// or the overlapping sub-segment when parallel collinear segments overlap.
// Envelopes are compared first for a cheap exact rejection.
func (s LineSegment) IntersectSegment(other LineSegment) Geometry {
	if !s.Envelope().Intersects(other.Envelope()) {
		return nil
	}
	if s.IsDegenerate() {
		if other.ContainsPoint(s.p) {
			return s.p
		}
		return nil
	}
	if other.IsDegenerate() {
		if s.ContainsPoint(other.p) {
			return other.p
		}
		return nil
	}
	sl, err := s.Line()
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	switch g := other.IntersectLine(sl).(type) {
	case nil:
		return nil
	case Point:
		if s.ContainsPoint(g) {
			return g
		}
		return nil
	case LineSegment:
		// Collinear overlap: clip the other segment's parameter range
		// against [0, 1] on this segment.
		d := s.p.VectorTo(s.q)
		dd := d.MagnitudeSquared()
		t0 := new(big.Rat).Quo(s.p.VectorTo(other.p).Dot(d), dd)
		t1 := new(big.Rat).Quo(s.p.VectorTo(other.q).Dot(d), dd)
		if t0.Cmp(t1) > 0 {
			t0, t1 = t1, t0
		}
		return s.paramClip(t0, t1)
	default:
		panic(errors.AssertionFailedf("unexpected segment intersection %T", g))
	}
}

// DistanceSquaredToPoint returns the exact squared distance from the point
// to the segment, clamping the scalar projection to the endpoints.
func (s LineSegment) DistanceSquaredToPoint(pt Point) *big.Rat {
	if s.IsDegenerate() {
		return s.p.DistanceSquaredTo(pt)
	}
	d := s.p.VectorTo(s.q)
	t := new(big.Rat).Quo(s.p.VectorTo(pt).Dot(d), d.MagnitudeSquared())
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if t.Cmp(zero) < 0 {
		t = zero
	} else if t.Cmp(one) > 0 {
		t = one
	}
	return s.at(t).DistanceSquaredTo(pt)
}

// DistanceToPoint returns the distance from the point to the segment.
func (s LineSegment) DistanceToPoint(pt Point) rational.Sqrt {
	return rational.MustSqrt(s.DistanceSquaredToPoint(pt))
}

// Equal reports exactly whether two segments cover the same point set;
// endpoint order does not matter.
func (s LineSegment) Equal(other LineSegment) bool {
	return (s.p.Equal(other.p) && s.q.Equal(other.q)) ||
		(s.p.Equal(other.q) && s.q.Equal(other.p))
}

// EqualAt is Equal within the precision's error bound.
func (s LineSegment) EqualAt(other LineSegment, prec rational.Precision) bool {
	return (s.p.EqualAt(other.p, prec) && s.q.EqualAt(other.q, prec)) ||
		(s.p.EqualAt(other.q, prec) && s.q.EqualAt(other.p, prec))
}

// String renders the endpoints.
func (s LineSegment) String() string {
	return fmt.Sprintf("segment{%s, %s}", s.p, s.q)
}
