package geometry

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/df07/go-exact-geometry/pkg/rational"
)

// Line is an infinite line through an anchor point with a direction vector.
// A line is defined modulo the choice of anchor and the sign and scale of
// its direction: Equal treats those representations as the same line.
type Line struct {
	anchor Point
	dir    Vector
}

// NewLine creates a line from a point and a direction. A zero direction is a
// degenerate construction and fails fast.
func NewLine(anchor Point, dir Vector) (Line, error) {
	if dir.IsZero() {
		return Line{}, errors.Newf("line with zero direction vector")
	}
	return Line{anchor: anchor, dir: dir}, nil
}

// NewLineThroughPoints creates the line through two distinct points.
func NewLineThroughPoints(p, q Point) (Line, error) {
	if p.Equal(q) {
		return Line{}, errors.Newf("line through coincident points %s", p)
	}
	return Line{anchor: p, dir: p.VectorTo(q)}, nil
}

// mustLine wraps NewLine for directions the caller has already proven
// non-zero.
func mustLine(anchor Point, dir Vector) Line {
	l, err := NewLine(anchor, dir)
	if err != nil {
		panic(errors.AssertionFailedf("%v", err))
	}
	return l
}

// Anchor returns the anchor point.
func (l Line) Anchor() Point { return l.anchor }

// Direction returns the direction vector.
func (l Line) Direction() Vector { return l.dir }

// At returns the point anchor + t·direction.
func (l Line) At(t *big.Rat) Point {
	return l.anchor.Translate(l.dir.Scale(t))
}

// ContainsPoint reports exactly whether the point lies on the line.
func (l Line) ContainsPoint(p Point) bool {
	return l.anchor.VectorTo(p).IsScalarMultipleOf(l.dir)
}

// IsParallelTo reports exactly whether the directions are scalar multiples.
func (l Line) IsParallelTo(other Line) bool {
	return l.dir.IsScalarMultipleOf(other.dir)
}

// Equal reports exactly whether both represent the same infinite line.
func (l Line) Equal(other Line) bool {
	return l.IsParallelTo(other) && l.ContainsPoint(other.anchor)
}

// IntersectLine returns the intersection of two infinite lines: the shared
// Line when they coincide, a Point when they cross, nil when they are
// parallel-distinct or skew.
//
// Crossing lines are solved as a 2x2 system over two coordinate axes. The
// axis pair is chosen by the largest cross-product component, i.e. the pair
// whose coefficient determinant is furthest from zero; the arithmetic is
// exact either way, this only avoids dividing by small determinants. The
// solution is then verified against the remaining axis, which rejects skew
// lines that meet in projection only.
func (l Line) IntersectLine(other Line) Geometry {
	cross := l.dir.Cross(other.dir)
	if cross.IsZero() {
		if l.ContainsPoint(other.anchor) {
			return l
		}
		return nil
	}

	// Axis k with the largest |cross| component; solve over the other two.
	ck := cross.comps()
	k := 0
	best := new(big.Rat).Abs(ck[0])
	for i := 1; i < 3; i++ {
		a := new(big.Rat).Abs(ck[i])
		if a.Cmp(best) > 0 {
			k, best = i, a
		}
	}
	i, j := (k+1)%3, (k+2)%3

	d := l.dir.comps()
	e := other.dir.comps()
	bvec := l.anchor.VectorTo(other.anchor)
	b := bvec.comps()

	// t·d_i − s·e_i = b_i, t·d_j − s·e_j = b_j.
	det := new(big.Rat).Sub(
		new(big.Rat).Mul(d[j], e[i]),
		new(big.Rat).Mul(d[i], e[j]),
	)
	t := new(big.Rat).Sub(
		new(big.Rat).Mul(e[i], b[j]),
		new(big.Rat).Mul(e[j], b[i]),
	)
	t.Quo(t, det)

	p := l.At(t)
	if !other.ContainsPoint(p) {
		return nil // skew: consistent in projection only
	}
	return p
}

// DistanceSquaredToPoint returns the exact squared distance from the point
// to the line, |(p−anchor) × dir|² / |dir|².
func (l Line) DistanceSquaredToPoint(p Point) *big.Rat {
	w := l.anchor.VectorTo(p)
	num := w.Cross(l.dir).MagnitudeSquared()
	return num.Quo(num, l.dir.MagnitudeSquared())
}

// DistanceToPoint returns the distance from the point to the line.
func (l Line) DistanceToPoint(p Point) rational.Sqrt {
	return rational.MustSqrt(l.DistanceSquaredToPoint(p))
}

// DistanceSquaredToLine returns the exact squared distance between two
// lines: zero when they intersect, the parallel gap, or the skew gap
// ((b·n)/|n|)² with n the cross of the directions.
func (l Line) DistanceSquaredToLine(other Line) *big.Rat {
	n := l.dir.Cross(other.dir)
	if n.IsZero() {
		return l.DistanceSquaredToPoint(other.anchor)
	}
	b := l.anchor.VectorTo(other.anchor)
	num := new(big.Rat).Mul(b.Dot(n), b.Dot(n))
	return num.Quo(num, n.MagnitudeSquared())
}

// DistanceToLine returns the distance between two lines.
func (l Line) DistanceToLine(other Line) rational.Sqrt {
	return rational.MustSqrt(l.DistanceSquaredToLine(other))
}

// String renders the line as anchor and direction.
func (l Line) String() string {
	return fmt.Sprintf("line{%s + t*%s}", l.anchor, l.dir)
}
