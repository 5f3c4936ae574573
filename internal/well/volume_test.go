package well

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/wellvol/internal/units"
)

func TestAccumulate(t *testing.T) {
	norm, p := resolve([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 2000, Use: true},
		{Role: Reservoir, ID: 6.184, OD: 7, Top: f(1900), Depth: 2500, Use: true},
		{Role: SmallLiner, ID: 3.958, OD: 4.5, Depth: 2600, Use: false},
	})
	vols := Accumulate(norm, p)
	require.Len(t, vols, 3)

	prod, res, liner := vols[0], vols[1], vols[2]
	assert.Equal(t, 1900.0, prod.IncludedLength)
	assert.Equal(t, 2000.0, prod.PhysicalLength)
	assert.InDelta(t, units.AreaFromDiameterInches(8.535)*1900, prod.Volume, 1e-12)
	assert.InDelta(t, units.AreaFromDiameterInches(8.535), prod.PerMeter, 1e-12)

	assert.Equal(t, 600.0, res.IncludedLength)
	assert.Equal(t, []Interval{{Start: 1900, End: 2500}}, res.Intervals)

	assert.False(t, liner.Use)
	assert.Equal(t, 0.0, liner.Volume)
	assert.Equal(t, 0.0, liner.PerMeter, "zero length gives zero per-meter volume")
}

func TestSplitAtPOI(t *testing.T) {
	res := Compute([]Segment{
		{Role: Production, ID: 10, OD: 10.75, Depth: 100, Use: true},
	}, Options{PlugEnabled: true, PlugDepth: 30})

	require.NotNil(t, res.Plug)
	area := units.AreaFromDiameterInches(10)
	assert.InDelta(t, area*30, res.Plug.Above, 1e-12)
	assert.InDelta(t, area*70, res.Plug.Below, 1e-12)
	assert.InDelta(t, res.TotalVolume, res.Plug.Above+res.Plug.Below, 1e-12)
	assert.Nil(t, res.InnerString)
}

func TestSplitAtOutsideWell(t *testing.T) {
	_, p := resolve([]Segment{
		{Role: Riser, ID: 19.5, OD: 21, Depth: 100, Use: true},
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 600, Use: true},
	})
	total := p.TotalVolume()

	above, below := p.SplitAt(-10)
	assert.Equal(t, 0.0, above)
	assert.InDelta(t, total, below, 1e-12)

	above, below = p.SplitAt(1e6)
	assert.InDelta(t, total, above, 1e-12)
	assert.Equal(t, 0.0, below)

	// On a span boundary
	above, _ = p.SplitAt(100)
	assert.InDelta(t, units.AreaFromDiameterInches(19.5)*100, above, 1e-12)
}
