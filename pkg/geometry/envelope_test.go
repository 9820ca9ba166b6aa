package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEnvelope(t *testing.T, min, max Vector) Envelope {
	t.Helper()
	e, err := NewEnvelope(min, max)
	require.NoError(t, err)
	return e
}

func TestNewEnvelope_Invalid(t *testing.T) {
	_, err := NewEnvelope(vec(1, 0, 0), vec(0, 1, 1))
	require.Error(t, err)

	// Degenerate but ordered extents are fine.
	_, err = NewEnvelope(vec(1, 1, 1), vec(1, 1, 1))
	require.NoError(t, err)
}

func TestEnvelopeOfPoints(t *testing.T) {
	_, err := EnvelopeOfPoints()
	require.Error(t, err)

	e, err := EnvelopeOfPoints(pt(1, -2, 3), pt(-1, 2, 0), pt(0, 0, 5))
	require.NoError(t, err)
	require.True(t, e.Min().Equal(vec(-1, -2, 0)))
	require.True(t, e.Max().Equal(vec(1, 2, 5)))

	single, err := EnvelopeOfPoints(pt(2, 2, 2))
	require.NoError(t, err)
	require.True(t, single.Min().Equal(vec(2, 2, 2)))
	require.True(t, single.Max().Equal(vec(2, 2, 2)))
}

func TestEnvelope_Intersect(t *testing.T) {
	t.Run("overlapping boxes", func(t *testing.T) {
		a := mustEnvelope(t, vec(-1, -1, -1), vec(1, 1, 1))
		b := mustEnvelope(t, vec(0, 0, 0), vec(1, 1, 1))
		got, ok := a.Intersect(b)
		require.True(t, ok)
		require.True(t, got.Equal(b))
	})

	t.Run("touching at a corner", func(t *testing.T) {
		a := mustEnvelope(t, vec(-1, -1, -1), vec(0, 0, 0))
		b := mustEnvelope(t, vec(0, 0, 0), vec(1, 1, 1))
		got, ok := a.Intersect(b)
		require.True(t, ok)
		require.True(t, got.Equal(mustEnvelope(t, vec(0, 0, 0), vec(0, 0, 0))))
		require.True(t, a.Intersects(b))
	})

	t.Run("disjoint boxes", func(t *testing.T) {
		a := mustEnvelope(t, vec(0, 0, 0), vec(1, 1, 1))
		b := mustEnvelope(t, vec(2, 2, 2), vec(3, 3, 3))
		_, ok := a.Intersect(b)
		require.False(t, ok)
		require.False(t, a.Intersects(b))
	})

	t.Run("intersection with itself is idempotent", func(t *testing.T) {
		e := mustEnvelope(t, vec(-2, 0, 1), vec(3, 4, 5))
		got, ok := e.Intersect(e)
		require.True(t, ok)
		require.True(t, got.Equal(e))
	})
}

func TestEnvelope_Union(t *testing.T) {
	a := mustEnvelope(t, vec(-1, 0, 0), vec(1, 1, 1))
	b := mustEnvelope(t, vec(0, -2, 0), vec(2, 0, 3))

	u := a.Union(b)
	require.True(t, u.Equal(mustEnvelope(t, vec(-1, -2, 0), vec(2, 1, 3))))

	// Union with itself is idempotent, and the operands are untouched.
	require.True(t, a.Union(a).Equal(a))
	require.True(t, a.Equal(mustEnvelope(t, vec(-1, 0, 0), vec(1, 1, 1))))
	require.True(t, b.Equal(mustEnvelope(t, vec(0, -2, 0), vec(2, 0, 3))))
}

func TestEnvelope_ContainmentMonotonicity(t *testing.T) {
	inner := mustEnvelope(t, vec(0, 0, 0), vec(1, 1, 1))
	outer := mustEnvelope(t, vec(-1, -1, -1), vec(2, 2, 2))
	require.True(t, inner.IsContainedBy(outer))
	require.False(t, outer.IsContainedBy(inner))
	require.True(t, inner.IsContainedBy(inner))

	// Every point of the inner box is a point of the outer box.
	samples := []Point{
		pt(0, 0, 0),
		pt(1, 1, 1),
		ptRat(ratOf(1, 2), ratOf(1, 3), ratOf(2, 3)),
	}
	for _, p := range samples {
		require.True(t, inner.ContainsPoint(p))
		require.True(t, outer.ContainsPoint(p))
	}
}

func TestEnvelope_ContainsPoint(t *testing.T) {
	e := mustEnvelope(t, vec(0, 0, 0), vec(2, 2, 2))

	require.True(t, e.ContainsPoint(pt(1, 1, 1)))
	require.True(t, e.ContainsPoint(pt(0, 0, 0)))
	require.True(t, e.ContainsPoint(pt(2, 2, 2)))
	require.False(t, e.ContainsPoint(pt(3, 1, 1)))
	require.False(t, e.ContainsPoint(pt(1, 1, -1)))
}

func TestEnvelope_DistanceToPoint(t *testing.T) {
	e := mustEnvelope(t, vec(0, 0, 0), vec(2, 2, 2))

	require.Equal(t, 0, e.DistanceSquaredToPoint(pt(1, 1, 1)).Sign())
	require.Equal(t, 0, e.DistanceSquaredToPoint(pt(2, 2, 2)).Sign())
	require.Equal(t, 0, e.DistanceSquaredToPoint(pt(5, 1, 1)).Cmp(ratOf(9, 1)))
	require.Equal(t, 0, e.DistanceSquaredToPoint(pt(5, 6, 1)).Cmp(ratOf(25, 1)))
	require.Equal(t, 0, e.DistanceSquaredToPoint(pt(-1, -2, -2)).Cmp(ratOf(9, 1)))

	d, ok := e.DistanceToPoint(pt(5, 6, 1)).Exact()
	require.True(t, ok)
	require.Equal(t, 0, d.Cmp(ratOf(5, 1)))
}

func TestEnvelope_Corners(t *testing.T) {
	e := mustEnvelope(t, vec(0, 0, 0), vec(1, 2, 3))
	corners := e.Corners()
	require.Len(t, corners, 8)

	seen := map[string]bool{}
	for _, c := range corners {
		require.True(t, e.ContainsPoint(c))
		seen[c.String()] = true
	}
	require.Len(t, seen, 8)
}
