package well

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Accumulate integrates the bore volume of every owned span per segment.
// The returned slice has one entry per normalized segment, in order.
func Accumulate(norm []Normalized, p Partition) []SegmentVolume {
	out := make([]SegmentVolume, len(norm))
	for i, n := range norm {
		out[i] = SegmentVolume{
			Role:           n.Role,
			Index:          n.Index,
			Use:            n.Use,
			Excluded:       n.Use && n.Excluded,
			PhysicalLength: n.PhysicalLength,
		}
	}

	for _, s := range p.Spans {
		v := &out[s.Owner]
		v.Volume += s.Volume()
		v.IncludedLength += s.Length()
		v.Intervals = append(v.Intervals, Interval{Start: s.Start, End: s.End})
	}

	for i := range out {
		out[i].PerMeter = perMeter(out[i].Volume, out[i].IncludedLength)
	}
	return out
}

func perMeter(volume, length float64) float64 {
	if length <= 0 {
		return 0
	}
	return volume / length
}

// TotalVolume sums the bore volume of all owned spans
func (p Partition) TotalVolume() float64 {
	vols := make([]float64, len(p.Spans))
	for i, s := range p.Spans {
		vols[i] = s.Volume()
	}
	return floats.Sum(vols)
}

// SplitAt divides the owned volume at depth d. Spans straddling d contribute
// their partial lengths to each side.
func (p Partition) SplitAt(d float64) (above, below float64) {
	var a, b []float64
	for _, s := range p.Spans {
		cut := math.Min(math.Max(d, s.Start), s.End)
		a = append(a, s.Area*(cut-s.Start))
		b = append(b, s.Area*(s.End-cut))
	}
	return floats.Sum(a), floats.Sum(b)
}
