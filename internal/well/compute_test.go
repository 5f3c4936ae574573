package well

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/wellvol/internal/units"
)

func TestComputeExcludedConductor(t *testing.T) {
	res := Compute([]Segment{
		{Role: Conductor, ID: 28, OD: 30, Depth: 100, Use: true},
		{Role: Surface, ID: 18.73, OD: 20, Depth: 500, Use: true},
	}, Options{})

	conductor, ok := res.Volume(Conductor, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, conductor.Volume)
	assert.True(t, conductor.Excluded)
	assert.Equal(t, 100.0, conductor.PhysicalLength)

	assert.InDelta(t, units.AreaFromDiameterInches(18.73)*500, res.TotalVolume, 1e-12)

	var drawn bool
	for _, item := range res.CasingsToDraw {
		if item.Role == Conductor {
			drawn = true
			assert.True(t, item.Excluded)
		}
	}
	assert.True(t, drawn, "excluded conductor is still drawn")
}

func TestComputeExcludedSurface(t *testing.T) {
	res := Compute([]Segment{
		{Role: Conductor, ID: 28, OD: 30, Depth: 100, Use: true},
		{Role: Surface, ID: 18.73, OD: 20, Depth: 500, Use: true},
		{Role: Intermediate, ID: 12.347, OD: 13.375, Depth: 1500, Use: true},
	}, Options{})

	assert.InDelta(t, units.AreaFromDiameterInches(12.347)*1500, res.TotalVolume, 1e-12)
	assert.Len(t, res.CasingsToDraw, 3)
}

func TestComputeDegradesOnBadInput(t *testing.T) {
	res := Compute([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 2000, Use: true},
		{Role: Reservoir, ID: math.NaN(), OD: 7, Depth: 2500, Use: true},
		{Role: Tieback, ID: 9, OD: 8, Top: f(0), Depth: 1000, Use: true},
	}, Options{PlugEnabled: true, PlugDepth: math.NaN()})

	require.NotNil(t, res)
	assert.Nil(t, res.Plug)
	assert.True(t, units.Finite(res.TotalVolume))
	assert.Greater(t, res.TotalVolume, 0.0)
	assert.Equal(t, 2000.0, res.WellBottom)

	// reservoir skipped, tieback OD < ID, POI invalid
	assert.Len(t, res.Warnings, 3)
}

func TestComputeEmpty(t *testing.T) {
	res := Compute(nil, Options{PlugEnabled: true, PlugDepth: 100})
	require.NotNil(t, res)
	assert.Equal(t, 0.0, res.TotalVolume)
	require.NotNil(t, res.Plug)
	assert.Equal(t, 0.0, res.Plug.Above)
	assert.Empty(t, res.CasingsToDraw)
	assert.Nil(t, res.InnerString)
}

func TestComputePOIBelowBottomWarns(t *testing.T) {
	res := Compute([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 2000, Use: true},
	}, Options{PlugEnabled: true, PlugDepth: 2500})
	require.Len(t, res.Warnings, 1)
	assert.InDelta(t, res.TotalVolume, res.Plug.Above, 1e-12)
}

func TestComputeFullWell(t *testing.T) {
	segments := []Segment{
		{Role: Riser, ID: 19.5, OD: 21, Depth: 350, Use: true},
		{Role: Conductor, ID: 28, OD: 30, Depth: 450, Use: true},
		{Role: Surface, ID: 18.73, OD: 20, Depth: 1000, Use: true},
		{Role: Intermediate, ID: 12.347, OD: 13.375, Depth: 2200, Use: true},
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 3277.5, Use: true},
		{Role: Reservoir, ID: 6.184, OD: 7, Top: f(3150), Depth: 4065, Use: true},
		{Role: UpperCompletion, ID: 4.892, OD: 5.5, Depth: 3100, Use: true},
		{Role: OpenHole, ID: 6, Depth: 4200, Use: true},
	}
	res := Compute(segments, Options{PlugEnabled: true, PlugDepth: 3120})

	// Riser 0-350, intermediate 350-2200, production 2200-3150, liner 3150-4065, hole 4065-4200
	expected := units.AreaFromDiameterInches(19.5)*350 +
		units.AreaFromDiameterInches(12.347)*1850 +
		units.AreaFromDiameterInches(8.535)*950 +
		units.AreaFromDiameterInches(6.184)*915 +
		units.AreaFromDiameterInches(6)*135
	assert.InDelta(t, expected, res.CasingVolume, 1e-9)
	assert.Equal(t, 4200.0, res.WellBottom)
	assert.True(t, res.UCActive)
	assert.False(t, res.InnerString.CrossesPOI)
	assert.InDelta(t, res.TotalVolume, res.Plug.Above+res.Plug.Below, 1e-9)
	assert.Empty(t, res.Warnings)
}
