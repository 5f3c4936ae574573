package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tub, ok := Lookup(Tubing, ` 5-1/2"  17# `)
	require.True(t, ok)
	assert.Equal(t, 5.5, tub.OD)
	assert.Equal(t, 4.892, tub.ID)

	_, ok = Lookup(Casing, `5-1/2" 17#`)
	assert.False(t, ok, "tubing label must not resolve as casing")

	_, ok = Lookup(DrillPipe, "")
	assert.False(t, ok)
}

// Quoted capacities must agree with the inner diameters to within rounding.
func TestDrillPipeCapacitiesMatchID(t *testing.T) {
	for _, dp := range DrillPipeSizes {
		t.Run(dp.Label, func(t *testing.T) {
			derived := Tubular{ID: dp.ID}.Capacity()
			assert.InDelta(t, dp.LPerM, derived, 0.01)
		})
	}
}

func TestCatalogSanity(t *testing.T) {
	for _, kind := range []Kind{Casing, Tubing, DrillPipe} {
		for _, e := range Sizes(kind) {
			assert.Greater(t, e.OD, e.ID, e.Label)
			if e.Drift > 0 {
				assert.LessOrEqual(t, e.Drift, e.ID, e.Label)
			}
			assert.Equal(t, kind, e.Kind, e.Label)
		}
	}
}
