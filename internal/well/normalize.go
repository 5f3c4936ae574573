package well

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/wellvol/internal/units"
)

// Normalized is a segment with its resolved geometry and inclusion flags
type Normalized struct {
	Segment

	Valid    bool // all numbers needed for volume and drawing are present
	Excluded bool // superseded for volume by the next string in

	// DrawStart is the explicit top, or the depth reached by the previous
	// counted segment when the top is absent. It is also where the
	// segment's claim on the depth axis begins.
	DrawStart float64

	ShouldDraw        bool
	ShouldCountVolume bool
	PhysicalLength    float64
}

// BoreArea is the fluid cross-section inside the segment (m²)
func (n Normalized) BoreArea() float64 {
	lPerM := 0.0
	if n.LPerM != nil {
		lPerM = *n.LPerM
	}
	return units.BoreArea(n.ID, lPerM)
}

// FitLimit is the largest OD that passes through the segment: the drift
// when known, otherwise the inner diameter.
func (n Normalized) FitLimit() float64 {
	if n.Drift != nil && units.Finite(*n.Drift) && *n.Drift > 0 {
		return *n.Drift
	}
	return n.ID
}

// Normalize sorts segments into role order and resolves tops, exclusion and
// the draw/count predicates. Warnings describe segments that were dropped.
func Normalize(segments []Segment, opts Options) ([]Normalized, []Warning) {
	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Role.Order() != sorted[j].Role.Order() {
			return sorted[i].Role.Order() < sorted[j].Role.Order()
		}
		return sorted[i].Index < sorted[j].Index
	})

	var warnings []Warning
	norm := make([]Normalized, 0, len(sorted))
	for _, s := range sorted {
		if !s.Role.Valid() {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("unknown role %q ignored", s.Role)})
			continue
		}
		n := Normalized{Segment: s}
		n.Top = cleanOptional(s.Top, true)
		n.Drift = cleanOptional(s.Drift, false)
		n.LPerM = cleanOptional(s.LPerM, false)
		if s.Role == OpenHole && !positive(s.OD) {
			n.OD = s.ID
		}
		n.Valid = segmentValid(n)
		if s.Use && !n.Valid {
			warnings = append(warnings, Warning{Role: s.Role, Index: s.Index, Message: "missing or invalid depth/diameter, segment skipped"})
		}
		if n.Valid && n.Role != OpenHole && n.OD < n.ID {
			warnings = append(warnings, Warning{Role: s.Role, Index: s.Index, Message: fmt.Sprintf("OD %.3f in is smaller than ID %.3f in", n.OD, n.ID)})
		}
		norm = append(norm, n)
	}

	surfaceInUse := roleInUse(norm, Surface)
	if opts.SurfaceInUse != nil {
		surfaceInUse = *opts.SurfaceInUse
	}
	intermediateInUse := roleInUse(norm, Intermediate)
	if opts.IntermediateInUse != nil {
		intermediateInUse = *opts.IntermediateInUse
	}

	openHoleTop, hasOpenHoleTop := deepestShoe(norm)

	prevOwned := 0.0
	prevString := 0.0
	for i := range norm {
		n := &norm[i]
		if !n.Use || !n.Valid {
			continue
		}

		switch {
		case n.Role == OpenHole:
			if !hasOpenHoleTop {
				n.Valid = false
				warnings = append(warnings, Warning{Role: OpenHole, Message: "no casing in use, open hole top undefined"})
				continue
			}
			top := openHoleTop
			n.Top = &top
			n.DrawStart = top
		case n.Role.IsInnerString():
			// Tubing sections chain among themselves from surface
			n.DrawStart = prevString
			if n.Top != nil {
				n.DrawStart = *n.Top
			}
		default:
			n.DrawStart = prevOwned
			if n.Top != nil {
				n.DrawStart = *n.Top
			}
		}

		n.Excluded = (n.Role == Conductor && surfaceInUse) || (n.Role == Surface && intermediateInUse)
		n.ShouldDraw = n.Depth > n.DrawStart
		n.ShouldCountVolume = n.ShouldDraw && !n.Excluded
		n.PhysicalLength = math.Max(0, n.Depth-n.DrawStart)

		if n.Role.IsInnerString() {
			if n.ShouldDraw {
				prevString = math.Max(prevString, n.Depth)
			}
			continue
		}
		if n.ShouldCountVolume {
			prevOwned = math.Max(prevOwned, n.Depth)
		}
	}

	return norm, warnings
}

func segmentValid(n Normalized) bool {
	if !positive(n.Depth) || !positive(n.OD) {
		return false
	}
	if n.Role.IsInnerString() {
		return positive(n.ID) || n.LPerM != nil
	}
	return positive(n.ID)
}

func positive(x float64) bool {
	return units.Finite(x) && x > 0
}

// cleanOptional drops non-finite and out-of-range optional values
func cleanOptional(v *float64, allowZero bool) *float64 {
	if v == nil || !units.Finite(*v) || *v < 0 || (!allowZero && *v == 0) {
		return nil
	}
	x := *v
	return &x
}

func roleInUse(norm []Normalized, role Role) bool {
	for _, n := range norm {
		if n.Role == role && n.Use && n.Valid {
			return true
		}
	}
	return false
}

// deepestShoe is the open-hole top: the deepest shoe of the casings in use
func deepestShoe(norm []Normalized) (float64, bool) {
	deepest, found := 0.0, false
	for _, n := range norm {
		if n.Role == OpenHole || n.Role.IsInnerString() || !n.Use || !n.Valid {
			continue
		}
		if !found || n.Depth > deepest {
			deepest, found = n.Depth, true
		}
	}
	return deepest, found
}
