// Package well computes fluid volumes for a well described as concentric
// casing, liner and tubing strings.
//
// Compute is a pure function of its inputs. It never fails: malformed
// segments are skipped and reported as warnings on the result.
package well

import (
	"github.com/alexiusacademia/wellvol/internal/units"
)

// Compute normalizes the segments, resolves depth ownership, integrates
// volumes and splits them at the point of interest.
func Compute(segments []Segment, opts Options) *Result {
	norm, warnings := Normalize(segments, opts)

	str, dpMode, strWarnings := innerString(norm, opts)
	warnings = append(warnings, strWarnings...)

	// Tubing sections are neither drawn nor counted while drill pipe is run
	if dpMode {
		for i := range norm {
			if norm[i].Role.IsInnerString() {
				norm[i].ShouldDraw = false
				norm[i].ShouldCountVolume = false
			}
		}
	}

	p := ResolveOwnership(norm)

	res := &Result{
		CasingVolume:  p.TotalVolume(),
		WellBottom:    p.Bottom(),
		Spans:         p.Spans,
		CasingsToDraw: DrawOrder(norm, !dpMode),
		DPMode:        dpMode,
		UCActive:      !dpMode && str.Active(),
	}
	res.TotalVolume = res.CasingVolume

	volumes := Accumulate(norm, p)

	var poi *float64
	if opts.PlugEnabled && units.Finite(opts.PlugDepth) && opts.PlugDepth >= 0 {
		d := opts.PlugDepth
		poi = &d
	}

	if str.Active() {
		inner, w := Decompose(p, str, poi)
		warnings = append(warnings, w...)
		warnings = append(warnings, FitCheck(norm, p, str)...)
		res.InnerString = inner
		res.SteelVolume = inner.Total.Steel
		if opts.SubtractEOD {
			res.TotalVolume = res.CasingVolume - res.SteelVolume
		}

		// Tubing sections report their bore volume
		if str.Kind == ModeTubing {
			for _, sec := range inner.Sections {
				v := &volumes[sec.Owner]
				v.Volume = sec.BoreVolume
				v.IncludedLength = sec.CoveredLength
				v.PerMeter = perMeter(sec.BoreVolume, sec.CoveredLength)
			}
		}
	}
	res.PerCasingVolumes = volumes

	if poi != nil {
		split := &PlugSplit{Depth: *poi}
		switch {
		case res.InnerString != nil && opts.SubtractEOD:
			split.Above = res.InnerString.Above.Fluid()
			split.Below = res.InnerString.Below.Fluid()
		case res.InnerString != nil:
			split.Above = res.InnerString.Above.Casing()
			split.Below = res.InnerString.Below.Casing()
		default:
			split.Above, split.Below = p.SplitAt(*poi)
		}
		res.Plug = split
	}

	if opts.PlugEnabled && poi == nil {
		warnings = append(warnings, Warning{Message: "point of interest depth is invalid, split skipped"})
	}
	if poi != nil && *poi > res.WellBottom && len(p.Spans) > 0 {
		warnings = append(warnings, Warning{Message: "point of interest is below the well bottom"})
	}

	res.Warnings = warnings
	return res
}

// innerString picks the active inner string: drill pipe when its mode is
// selected and it has sections, otherwise the upper completion tubing.
func innerString(norm []Normalized, opts Options) (InnerString, bool, []Warning) {
	if opts.DrillPipe != nil && opts.DrillPipe.Mode == ModeDrillPipe {
		dp, warnings := DrillPipeString(*opts.DrillPipe)
		if dp.Active() {
			return dp, true, warnings
		}
		return TubingString(norm), false, warnings
	}
	return TubingString(norm), false, nil
}

