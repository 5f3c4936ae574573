package well

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/wellvol/internal/units"
)

// StringSection is one size section of an inner string
type StringSection struct {
	Label string  `json:"label,omitempty"`
	Index int     `json:"index"` // segment index for tubing, pipe position for drill pipe
	Owner int     `json:"-"`     // normalized position of the tubing segment, -1 for drill pipe
	Top   float64 `json:"top"`
	Depth float64 `json:"depth"`
	ID    float64 `json:"id,omitempty"`
	OD    float64 `json:"od"`
	LPerM float64 `json:"l_per_m,omitempty"`

	BoreArea  float64 `json:"bore_area"`  // m²
	OuterArea float64 `json:"outer_area"` // m²

	// Filled by Decompose
	BoreVolume    float64 `json:"bore_volume"`
	CoveredLength float64 `json:"covered_length"`
}

// InnerString is a tubing or drill-pipe string run inside the casing
type InnerString struct {
	Kind     StringMode
	Sections []StringSection
}

// Active reports whether the string has any section
func (s InnerString) Active() bool {
	return len(s.Sections) > 0
}

// Shoe is the deepest point of the string
func (s InnerString) Shoe() float64 {
	var shoe float64
	for _, sec := range s.Sections {
		shoe = math.Max(shoe, sec.Depth)
	}
	return shoe
}

// sectionAt returns the section present over [a, b]. Where sections overlap
// the later one is used.
func (s InnerString) sectionAt(a, b float64) int {
	found := -1
	for i, sec := range s.Sections {
		if sec.Top <= a+units.Zeroish && sec.Depth >= b-units.Zeroish {
			found = i
		}
	}
	return found
}

// TubingString builds the inner string from the upper completion segments
func TubingString(norm []Normalized) InnerString {
	str := InnerString{Kind: ModeTubing}
	for i, n := range norm {
		if !n.Role.IsInnerString() || !n.Use || !n.Valid || !n.ShouldDraw {
			continue
		}
		lPerM := 0.0
		if n.LPerM != nil {
			lPerM = *n.LPerM
		}
		str.Sections = append(str.Sections, StringSection{
			Label:     n.Label,
			Index:     n.Index,
			Owner:     i,
			Top:       n.DrawStart,
			Depth:     n.Depth,
			ID:        n.ID,
			OD:        n.OD,
			LPerM:     lPerM,
			BoreArea:  n.BoreArea(),
			OuterArea: units.AreaFromDiameterInches(n.OD),
		})
	}
	return str
}

// DrillPipeString stacks the drill-pipe sections from surface
func DrillPipeString(dp DrillPipe) (InnerString, []Warning) {
	str := InnerString{Kind: ModeDrillPipe}
	var warnings []Warning
	top := 0.0
	for i, pipe := range dp.Pipes {
		if !units.Finite(pipe.Length) || pipe.Length <= 0 {
			continue
		}
		bore := units.BoreArea(pipe.ID, pipe.LPerM)
		outer := units.AreaFromDiameterInches(pipe.OD)
		if bore <= 0 || outer <= 0 {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("drill pipe %d (%s): missing OD or capacity, section skipped", i+1, pipe.Size)})
			top += pipe.Length
			continue
		}
		str.Sections = append(str.Sections, StringSection{
			Label:     pipe.Size,
			Index:     i,
			Owner:     -1,
			Top:       top,
			Depth:     top + pipe.Length,
			ID:        pipe.ID,
			OD:        pipe.OD,
			LPerM:     pipe.LPerM,
			BoreArea:  bore,
			OuterArea: outer,
		})
		top += pipe.Length
	}
	return str, warnings
}

// StringVolumes breaks casing volume down around an inner string (m³).
// Bore + Annulus + Steel is the casing volume where the string runs;
// OpenCasing is casing volume with no string in it.
type StringVolumes struct {
	Bore       float64 `json:"bore"`
	Annulus    float64 `json:"annulus"`
	OpenCasing float64 `json:"open_casing"`
	Steel      float64 `json:"steel"`
}

// Fluid is the volume not occupied by steel
func (v StringVolumes) Fluid() float64 {
	return v.Bore + v.Annulus + v.OpenCasing
}

// Casing is the casing bore volume the breakdown covers
func (v StringVolumes) Casing() float64 {
	return v.Fluid() + v.Steel
}

func (v *StringVolumes) add(o StringVolumes) {
	v.Bore += o.Bore
	v.Annulus += o.Annulus
	v.OpenCasing += o.OpenCasing
	v.Steel += o.Steel
}

// InnerStringResult is the decomposition of the well around an inner string
type InnerStringResult struct {
	Kind       StringMode      `json:"kind"`
	Sections   []StringSection `json:"sections"`
	Shoe       float64         `json:"shoe"`
	CrossesPOI bool            `json:"crosses_poi"`

	Total StringVolumes `json:"total"`
	Above StringVolumes `json:"above"` // above the POI, zero when the POI is off
	Below StringVolumes `json:"below"`

	// Casing volume from the shoe down to the POI when the string lies above
	// it, otherwise down to the well bottom
	CasingVolumeBelowShoe float64 `json:"casing_volume_below_shoe"`
}

// Decompose splits the owned casing volume into string bore, annulus, open
// casing and steel, on both sides of the POI when one is given. Tubing and
// drill pipe go through the same path.
func Decompose(p Partition, str InnerString, poi *float64) (*InnerStringResult, []Warning) {
	res := &InnerStringResult{
		Kind:     str.Kind,
		Sections: append([]StringSection(nil), str.Sections...),
		Shoe:     str.Shoe(),
	}
	var warnings []Warning

	cut := math.Inf(1)
	if poi != nil {
		cut = *poi
		res.CrossesPOI = res.Shoe > cut
	}

	for _, span := range p.Spans {
		edges := []float64{span.Start, span.End}
		for _, sec := range str.Sections {
			edges = append(edges, sec.Top, sec.Depth)
		}
		if poi != nil {
			edges = append(edges, cut)
		}
		edges = uniqueSorted(edges)

		for k := 0; k+1 < len(edges); k++ {
			a, b := edges[k], edges[k+1]
			if a < span.Start-units.Zeroish || b > span.End+units.Zeroish || b-a <= units.Zeroish {
				continue
			}
			length := b - a
			piece := StringVolumes{}
			if i := str.sectionAt(a, b); i >= 0 {
				sec := &res.Sections[i]
				bore := math.Min(sec.BoreArea, span.Area)
				annulus := math.Min(math.Max(0, span.Area-sec.OuterArea), span.Area-bore)
				piece.Bore = bore * length
				piece.Annulus = annulus * length
				piece.Steel = (span.Area - bore - annulus) * length
				sec.BoreVolume += piece.Bore
				sec.CoveredLength += length
			} else {
				piece.OpenCasing = span.Area * length
			}

			res.Total.add(piece)
			if b <= cut+units.Zeroish {
				res.Above.add(piece)
			} else {
				res.Below.add(piece)
			}
		}
	}

	if poi == nil {
		res.Above = StringVolumes{}
	}

	bottom := p.Bottom()
	if poi != nil && res.Shoe < cut {
		bottom = math.Min(bottom, cut)
	}
	if bottom > res.Shoe {
		res.CasingVolumeBelowShoe = p.VolumeBetween(res.Shoe, bottom)
	}

	for _, sec := range res.Sections {
		if sec.Depth-sec.Top-sec.CoveredLength > units.Zeroish {
			warnings = append(warnings, sectionWarning(str.Kind, sec, "extends outside the cased/open hole, uncovered part not counted"))
		}
	}
	return res, warnings
}

// FitCheck warns about string sections whose OD does not pass the drift of
// a casing they run through
func FitCheck(norm []Normalized, p Partition, str InnerString) []Warning {
	var warnings []Warning
	for _, sec := range str.Sections {
		seen := map[int]bool{}
		for _, span := range p.Clip(sec.Top, sec.Depth) {
			if seen[span.Owner] {
				continue
			}
			seen[span.Owner] = true
			casing := norm[span.Owner]
			if limit := casing.FitLimit(); sec.OD > limit+units.Zeroish {
				warnings = append(warnings, sectionWarning(str.Kind, sec,
					fmt.Sprintf("OD %.3f in does not fit %s drift %.3f in", sec.OD, casing.Role.Title(), limit)))
			}
		}
	}
	return warnings
}

func sectionWarning(kind StringMode, sec StringSection, msg string) Warning {
	if kind == ModeDrillPipe {
		return Warning{Message: fmt.Sprintf("drill pipe %d (%s): %s", sec.Index+1, sec.Label, msg)}
	}
	return Warning{Role: UpperCompletion, Index: sec.Index, Message: msg}
}
