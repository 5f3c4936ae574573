package well

import (
	"math"
	"sort"

	"github.com/alexiusacademia/wellvol/internal/units"
)

// Interval is a depth range [Start, End] in meters
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Length returns End - Start, never negative
func (iv Interval) Length() float64 {
	return math.Max(0, iv.End-iv.Start)
}

// Span is an owned interval: a depth range accounted to exactly one segment
type Span struct {
	Owner int     `json:"owner"` // index into the normalized segment slice
	Role  Role    `json:"role"`
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Area  float64 `json:"area"` // bore area of the owner (m²)
}

// Length returns the span length in meters
func (s Span) Length() float64 {
	return math.Max(0, s.End-s.Start)
}

// Volume returns the bore volume of the span (m³)
func (s Span) Volume() float64 {
	return s.Area * s.Length()
}

// Partition is the disjoint, depth-ordered set of owned spans
type Partition struct {
	Spans []Span
}

// ResolveOwnership assigns every depth covered by a counted casing segment
// to exactly one owner. Only segments whose ranges actually cover a depth
// compete for it: the narrowest bore wins, and on equal bores the
// later-declared segment wins.
func ResolveOwnership(norm []Normalized) Partition {
	var candidates []int
	var edges []float64
	for i, n := range norm {
		if !n.ShouldCountVolume || n.Role.IsInnerString() {
			continue
		}
		candidates = append(candidates, i)
		edges = append(edges, n.DrawStart, n.Depth)
	}
	if len(candidates) == 0 {
		return Partition{}
	}

	edges = uniqueSorted(edges)

	var p Partition
	for k := 0; k+1 < len(edges); k++ {
		a, b := edges[k], edges[k+1]
		if b-a <= units.Zeroish {
			continue
		}

		winner := -1
		for _, i := range candidates {
			n := norm[i]
			if n.DrawStart > a+units.Zeroish || n.Depth < b-units.Zeroish {
				continue
			}
			if winner < 0 || narrower(n, norm[winner]) {
				winner = i
			}
		}
		if winner < 0 {
			continue
		}

		if last := len(p.Spans) - 1; last >= 0 && p.Spans[last].Owner == winner && math.Abs(p.Spans[last].End-a) <= units.Zeroish {
			p.Spans[last].End = b
			continue
		}
		w := norm[winner]
		p.Spans = append(p.Spans, Span{
			Owner: winner,
			Role:  w.Role,
			Index: w.Index,
			Start: a,
			End:   b,
			Area:  w.BoreArea(),
		})
	}
	return p
}

// narrower reports whether a takes ownership from b over a shared interval.
// Bores are compared by the area the volume is integrated with, so a quoted
// linear capacity counts over the inner diameter. Candidates are visited in
// declaration order, so on a tie the later one wins.
func narrower(a, b Normalized) bool {
	areaA, areaB := a.BoreArea(), b.BoreArea()
	if math.Abs(areaA-areaB) <= areaTolerance {
		return true
	}
	return areaA < areaB
}

// areaTolerance treats bores within a square millimeter as equal
const areaTolerance = 1e-6

func uniqueSorted(xs []float64) []float64 {
	sort.Float64s(xs)
	out := xs[:0]
	for _, x := range xs {
		if len(out) > 0 && x-out[len(out)-1] <= units.Zeroish {
			continue
		}
		out = append(out, x)
	}
	return out
}

// Bottom is the deepest owned depth
func (p Partition) Bottom() float64 {
	if len(p.Spans) == 0 {
		return 0
	}
	return p.Spans[len(p.Spans)-1].End
}

// OwnerAt returns the span owning depth d. A depth on a boundary belongs to
// the deeper span.
func (p Partition) OwnerAt(d float64) (Span, bool) {
	for i := len(p.Spans) - 1; i >= 0; i-- {
		s := p.Spans[i]
		if d >= s.Start && d <= s.End {
			return s, true
		}
	}
	return Span{}, false
}

// Clip returns the spans cut to [start, end]
func (p Partition) Clip(start, end float64) []Span {
	var out []Span
	for _, s := range p.Spans {
		a, b := math.Max(s.Start, start), math.Min(s.End, end)
		if b-a <= units.Zeroish {
			continue
		}
		s.Start, s.End = a, b
		out = append(out, s)
	}
	return out
}

// VolumeBetween integrates the owned bore volume over [start, end]
func (p Partition) VolumeBetween(start, end float64) float64 {
	var v float64
	for _, s := range p.Clip(start, end) {
		v += s.Volume()
	}
	return v
}

// Intervals returns the owned intervals of the segment at norm index i
func (p Partition) Intervals(i int) []Interval {
	var out []Interval
	for _, s := range p.Spans {
		if s.Owner == i {
			out = append(out, Interval{Start: s.Start, End: s.End})
		}
	}
	return out
}
