package geometry

import "sort"

// Intersection records where a ray crossed a shape's surface: the
// signed distance t along the ray and the shape that was hit.
type Intersection struct {
	T     float64
	Shape ShapeID
}

// Intersections is a list of intersections, sorted ascending by t
// whenever it is returned from the tree.
type Intersections []Intersection

func (xs Intersections) Len() int           { return len(xs) }
func (xs Intersections) Less(i, j int) bool { return xs[i].T < xs[j].T }
func (xs Intersections) Swap(i, j int)      { xs[i], xs[j] = xs[j], xs[i] }

// Sort orders the list ascending by t in place and returns it.
func (xs Intersections) Sort() Intersections {
	sort.Sort(xs)
	return xs
}

// Hit returns the visible intersection: the lowest non-negative t.
// The second return is false when the ray misses everything in front
// of it.
func (xs Intersections) Hit() (Intersection, bool) {
	found := false
	var hit Intersection
	for _, x := range xs {
		if x.T > 0 && (!found || x.T < hit.T) {
			hit = x
			found = true
		}
	}
	return hit, found
}
