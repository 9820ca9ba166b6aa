package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Envelope is an exact axis-aligned bounding box. Every bounded shape
// exposes one, and the binary queries use envelope intersection as a cheap
// exact pre-filter before the full primitive-pair algorithm runs.
//
// A valid envelope has min <= max on every axis; a degenerate envelope
// (a face, an edge, or a single point) is valid.
type Envelope struct {
	min, max Vector
}

// NewEnvelope creates an envelope from min and max corners. A min exceeding
// the max on any axis fails fast.
func NewEnvelope(min, max Vector) (Envelope, error) {
	if min.dx.Cmp(&max.dx) > 0 || min.dy.Cmp(&max.dy) > 0 || min.dz.Cmp(&max.dz) > 0 {
		return Envelope{}, errors.Newf("envelope min %s exceeds max %s", min, max)
	}
	return Envelope{min: min, max: max}, nil
}

// EnvelopeOfPoints creates the envelope uniting the coordinate extents of
// one or more points.
func EnvelopeOfPoints(points ...Point) (Envelope, error) {
	if len(points) == 0 {
		return Envelope{}, errors.Newf("envelope of no points")
	}
	e := Envelope{min: points[0].Position(), max: points[0].Position()}
	for _, p := range points[1:] {
		pos := p.Position()
		minRat(&e.min.dx, &pos.dx)
		minRat(&e.min.dy, &pos.dy)
		minRat(&e.min.dz, &pos.dz)
		maxRat(&e.max.dx, &pos.dx)
		maxRat(&e.max.dy, &pos.dy)
		maxRat(&e.max.dz, &pos.dz)
	}
	return e, nil
}

// mustEnvelopeOfPoints wraps EnvelopeOfPoints for the shape accessors,
// which always pass at least one point.
func mustEnvelopeOfPoints(points ...Point) Envelope {
	e, err := EnvelopeOfPoints(points...)
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	return e
}

// minRat lowers dst to src if src is smaller.
func minRat(dst, src *big.Rat) {
	if src.Cmp(dst) < 0 {
		dst.Set(src)
	}
}

// maxRat raises dst to src if src is larger.
func maxRat(dst, src *big.Rat) {
	if src.Cmp(dst) > 0 {
		dst.Set(src)
	}
}

// Min returns the minimum corner.
func (e Envelope) Min() Vector { return e.min }

// Max returns the maximum corner.
func (e Envelope) Max() Vector { return e.max }

// Corners returns the eight corner points.
func (e Envelope) Corners() [8]Point {
	var out [8]Point
	xs := [2]*big.Rat{&e.min.dx, &e.max.dx}
	ys := [2]*big.Rat{&e.min.dy, &e.max.dy}
	zs := [2]*big.Rat{&e.min.dz, &e.max.dz}
	i := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				out[i] = NewPoint(NewVector(x, y, z))
				i++
			}
		}
	}
	return out
}

// clone deep-copies a vector. Struct assignment alone shares the rationals'
// backing storage, which must not be mutated in place.
func (v Vector) clone() Vector {
	return NewVector(&v.dx, &v.dy, &v.dz)
}

// Union returns the envelope covering both, componentwise min/max.
func (e Envelope) Union(other Envelope) Envelope {
	u := Envelope{min: e.min.clone(), max: e.max.clone()}
	minRat(&u.min.dx, &other.min.dx)
	minRat(&u.min.dy, &other.min.dy)
	minRat(&u.min.dz, &other.min.dz)
	maxRat(&u.max.dx, &other.max.dx)
	maxRat(&u.max.dy, &other.max.dy)
	maxRat(&u.max.dz, &other.max.dz)
	return u
}

// Intersect returns the overlap, componentwise max-of-mins and min-of-maxes.
// The overlap may be degenerate (a face, an edge, a point); ok is false when
// the envelopes do not meet at all, and the returned envelope must not be
// used in that case.
func (e Envelope) Intersect(other Envelope) (_ Envelope, ok bool) {
	r := Envelope{min: e.min.clone(), max: e.max.clone()}
	maxRat(&r.min.dx, &other.min.dx)
	maxRat(&r.min.dy, &other.min.dy)
	maxRat(&r.min.dz, &other.min.dz)
	minRat(&r.max.dx, &other.max.dx)
	minRat(&r.max.dy, &other.max.dy)
	minRat(&r.max.dz, &other.max.dz)
	if r.min.dx.Cmp(&r.max.dx) > 0 || r.min.dy.Cmp(&r.max.dy) > 0 || r.min.dz.Cmp(&r.max.dz) > 0 {
		return Envelope{}, false
	}
	return r, true
}

// Intersects reports whether the envelopes share at least one point.
// Touching boundaries count.
func (e Envelope) Intersects(other Envelope) bool {
	_, ok := e.Intersect(other)
	return ok
}

// IsContainedBy reports whether this envelope lies entirely inside other.
func (e Envelope) IsContainedBy(other Envelope) bool {
	return other.min.dx.Cmp(&e.min.dx) <= 0 && e.max.dx.Cmp(&other.max.dx) <= 0 &&
		other.min.dy.Cmp(&e.min.dy) <= 0 && e.max.dy.Cmp(&other.max.dy) <= 0 &&
		other.min.dz.Cmp(&e.min.dz) <= 0 && e.max.dz.Cmp(&other.max.dz) <= 0
}

// ContainsPoint reports whether the point lies in the closed box, boundary
// inclusive.
func (e Envelope) ContainsPoint(p Point) bool {
	pos := p.Position()
	return e.min.dx.Cmp(&pos.dx) <= 0 && pos.dx.Cmp(&e.max.dx) <= 0 &&
		e.min.dy.Cmp(&pos.dy) <= 0 && pos.dy.Cmp(&e.max.dy) <= 0 &&
		e.min.dz.Cmp(&pos.dz) <= 0 && pos.dz.Cmp(&e.max.dz) <= 0
}

// DistanceSquaredToPoint returns the exact squared distance from the point
// to the box: zero inside, else the squared magnitude of the per-axis
// clamped differences.
func (e Envelope) DistanceSquaredToPoint(p Point) *big.Rat {
	pos := p.Position()
	var gap Vector
	axisGap(&gap.dx, &pos.dx, &e.min.dx, &e.max.dx)
	axisGap(&gap.dy, &pos.dy, &e.min.dy, &e.max.dy)
	axisGap(&gap.dz, &pos.dz, &e.min.dz, &e.max.dz)
	return gap.MagnitudeSquared()
}

// axisGap sets dst to the distance from x to the interval [lo, hi], zero
// when x is inside.
func axisGap(dst, x, lo, hi *big.Rat) {
	if x.Cmp(lo) < 0 {
		dst.Sub(lo, x)
	} else if x.Cmp(hi) > 0 {
		dst.Sub(x, hi)
	}
}

// DistanceToPoint returns the distance from the point to the box.
func (e Envelope) DistanceToPoint(p Point) rational.Sqrt {
	return rational.MustSqrt(e.DistanceSquaredToPoint(p))
}

// Equal reports exact equality of both corners.
func (e Envelope) Equal(other Envelope) bool {
	return e.min.Equal(other.min) && e.max.Equal(other.max)
}

// String renders the corner extents.
func (e Envelope) String() string {
	return fmt.Sprintf("envelope{%s, %s}", e.min, e.max)
}
