package geometry

// Operation is a CSG set operation combining two subtrees.
type Operation int

const (
	OpUnion Operation = iota
	OpIntersection
	OpDifference
)

func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	}
	return "unknown"
}

// IntersectionAllowed decides whether a surface crossing survives a CSG
// operation. lhit says whether the left operand was hit; inl and inr
// say whether the crossing happens inside the left and right operands.
func IntersectionAllowed(op Operation, lhit, inl, inr bool) bool {
	switch op {
	case OpUnion:
		return (lhit && !inr) || (!lhit && !inl)
	case OpIntersection:
		return (lhit && inr) || (!lhit && inl)
	case OpDifference:
		return (lhit && !inr) || (!lhit && inl)
	}
	return false
}

// filterCSG walks the merged, sorted intersections of both operands,
// toggling inside flags at each crossing and keeping only the crossings
// the operation allows.
func (t *Tree) filterCSG(id ShapeID, xs Intersections) Intersections {
	s := &t.shapes[id]
	left := s.children[0]

	inl, inr := false, false
	var result Intersections
	for _, x := range xs {
		lhit := t.Includes(left, x.Shape)

		if IntersectionAllowed(s.Op, lhit, inl, inr) {
			result = append(result, x)
		}

		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
	}
	return result
}
