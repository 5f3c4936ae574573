package well

import "sort"

// DrawOrder lists the segments to draw, sorted by (z, prevDepth, -od) so
// shallower and wider strings are painted first and narrower, deeper ones
// overlay them. It uses the same ShouldDraw/DrawStart as volume inclusion;
// excluded segments are still drawn. Upper completion sections are only
// drawn when withTubing is set.
func DrawOrder(norm []Normalized, withTubing bool) []DrawItem {
	var items []DrawItem
	for _, n := range norm {
		if !n.Use || !n.Valid || !n.ShouldDraw {
			continue
		}
		if n.Role.IsInnerString() && !withTubing {
			continue
		}
		items = append(items, DrawItem{
			Role:      n.Role,
			Index:     n.Index,
			ID:        n.ID,
			OD:        n.OD,
			Depth:     n.Depth,
			PrevDepth: n.DrawStart,
			Z:         n.Role.Z(),
			Excluded:  n.Excluded,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.PrevDepth != b.PrevDepth {
			return a.PrevDepth < b.PrevDepth
		}
		return a.OD > b.OD
	})
	return items
}
