package geometry

// Clipping of lines, rays and segments against a convex planar region.
// Shared by Triangle and Rectangle: the region is described by its boundary
// edges and a coplanar containment test. All inputs are assumed to lie in
// the region's plane; the callers establish that via their plane
// intersection first.

// clipCoplanarLine clips a line lying in the region's plane. The boundary
// crossings of a convex region bound the covered interval, so collecting
// the edge intersections and spanning their extremes yields the result. A
// line running along an edge returns that edge overlap directly.
func clipCoplanarLine(edges []LineSegment, l Line) Geometry {
	var points []Point
	for _, e := range edges {
		switch g := e.IntersectLine(l).(type) {
		case LineSegment:
			return g
		case Point:
			points = append(points, g)
		}
	}
	return spanOf(dedupPoints(points), l.dir)
}

// clipCoplanarSegment clips a segment lying in the region's plane. The
// covered interval is bounded by boundary crossings and by endpoints that
// are inside the region.
func clipCoplanarSegment(contains func(Point) bool, edges []LineSegment, s LineSegment) Geometry {
	var points []Point
	if contains(s.p) {
		points = append(points, s.p)
	}
	if contains(s.q) {
		points = append(points, s.q)
	}
	for _, e := range edges {
		points = appendGeometryPoints(points, e.IntersectSegment(s))
	}
	return spanOf(dedupPoints(points), s.p.VectorTo(s.q))
}

// clipCoplanarRay clips a ray lying in the region's plane.
func clipCoplanarRay(contains func(Point) bool, edges []LineSegment, r Ray) Geometry {
	var points []Point
	if contains(r.start) {
		points = append(points, r.start)
	}
	for _, e := range edges {
		points = appendGeometryPoints(points, e.IntersectRay(r))
	}
	return spanOf(dedupPoints(points), r.dir)
}
