package layout

import "sort"

// IsInside reports whether inner is nested in outer: the two differ, inner is
// not stacked behind outer, and inner's rendered box lies within outer's on
// all four sides. outer does not have to be a container.
//
// Containment is recomputed from the current geometry on every call.
func (s *Store) IsInside(inner, outer *Element) bool {
	if inner == outer || inner.Z < outer.Z {
		return false
	}
	return outer.Box(s.canvas).Encloses(inner.Box(s.canvas))
}

// CollectContained returns every element nested in outer, grandchildren
// included, in ascending z order. The result may be empty.
func (s *Store) CollectContained(outer *Element) []*Element {
	var out []*Element
	for _, e := range s.elements {
		if s.IsInside(e, outer) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}
