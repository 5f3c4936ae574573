package catalog

import (
	"strings"

	"github.com/alexiusacademia/wellvol/internal/units"
)

// Kind groups catalog entries by how they are run in the well
type Kind string

const (
	Casing    Kind = "casing"
	Tubing    Kind = "tubing"
	DrillPipe Kind = "drillpipe"
)

// Tubular is one catalog size.
// Diameters are in inches, LPerM is the bore capacity in liters per meter.
type Tubular struct {
	Label  string
	Kind   Kind
	OD     float64
	ID     float64
	Drift  float64
	Weight float64 // lb/ft
	LPerM  float64 // 0 means derive from ID
}

// Capacity returns the bore capacity in L/m, from the catalog value when
// quoted, otherwise from the inner diameter.
func (t Tubular) Capacity() float64 {
	if t.LPerM > 0 {
		return t.LPerM
	}
	return units.LinearCapacityFromDiameterInches(t.ID)
}

// API 5CT casing sizes
var CasingSizes = []Tubular{
	{Label: `30" 310#`, Kind: Casing, OD: 30, ID: 28, Drift: 27.813, Weight: 310},
	{Label: `21" riser`, Kind: Casing, OD: 21, ID: 19.5, Drift: 19.5},
	{Label: `20" 133#`, Kind: Casing, OD: 20, ID: 18.73, Drift: 18.542, Weight: 133},
	{Label: `18-5/8" 87.5#`, Kind: Casing, OD: 18.625, ID: 17.755, Drift: 17.567, Weight: 87.5},
	{Label: `13-3/8" 72#`, Kind: Casing, OD: 13.375, ID: 12.347, Drift: 12.191, Weight: 72},
	{Label: `10-3/4" 55.5#`, Kind: Casing, OD: 10.75, ID: 9.76, Drift: 9.604, Weight: 55.5},
	{Label: `9-5/8" 53.5#`, Kind: Casing, OD: 9.625, ID: 8.535, Drift: 8.379, Weight: 53.5},
	{Label: `9-5/8" 47#`, Kind: Casing, OD: 9.625, ID: 8.681, Drift: 8.525, Weight: 47},
	{Label: `7" 29#`, Kind: Casing, OD: 7, ID: 6.184, Drift: 6.059, Weight: 29},
	{Label: `7" 32#`, Kind: Casing, OD: 7, ID: 6.094, Drift: 5.969, Weight: 32},
	{Label: `5" 18#`, Kind: Casing, OD: 5, ID: 4.276, Drift: 4.151, Weight: 18},
	{Label: `4-1/2" 12.6#`, Kind: Casing, OD: 4.5, ID: 3.958, Drift: 3.833, Weight: 12.6},
}

// Production tubing sizes
var TubingSizes = []Tubular{
	{Label: `7" 29#`, Kind: Tubing, OD: 7, ID: 6.184, Drift: 6.059, Weight: 29},
	{Label: `5-1/2" 17#`, Kind: Tubing, OD: 5.5, ID: 4.892, Drift: 4.767, Weight: 17},
	{Label: `4-1/2" 12.6#`, Kind: Tubing, OD: 4.5, ID: 3.958, Drift: 3.833, Weight: 12.6},
	{Label: `3-1/2" 9.2#`, Kind: Tubing, OD: 3.5, ID: 2.992, Drift: 2.867, Weight: 9.2},
	{Label: `2-7/8" 6.4#`, Kind: Tubing, OD: 2.875, ID: 2.441, Drift: 2.347, Weight: 6.4},
}

// Drill pipe sizes. Capacities are the rounded values printed on rig tally sheets.
var DrillPipeSizes = []Tubular{
	{Label: `5-1/2" 21.9#`, Kind: DrillPipe, OD: 5.5, ID: 4.778, Weight: 21.9, LPerM: 11.57},
	{Label: `5" 19.5#`, Kind: DrillPipe, OD: 5, ID: 4.276, Weight: 19.5, LPerM: 9.26},
	{Label: `4" 14#`, Kind: DrillPipe, OD: 4, ID: 3.34, Weight: 14, LPerM: 5.65},
	{Label: `3-1/2" 13.3#`, Kind: DrillPipe, OD: 3.5, ID: 2.764, Weight: 13.3, LPerM: 3.87},
}

// Sizes returns the table for a kind
func Sizes(kind Kind) []Tubular {
	switch kind {
	case Casing:
		return CasingSizes
	case Tubing:
		return TubingSizes
	case DrillPipe:
		return DrillPipeSizes
	}
	return nil
}

// Lookup finds a size by label within a kind. Matching ignores case and
// whitespace so `9-5/8" 53.5#` and `9-5/8"53.5#` are the same entry.
func Lookup(kind Kind, label string) (Tubular, bool) {
	key := normalizeLabel(label)
	if key == "" {
		return Tubular{}, false
	}
	for _, t := range Sizes(kind) {
		if normalizeLabel(t.Label) == key {
			return t, true
		}
	}
	return Tubular{}, false
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
