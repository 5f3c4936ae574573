package well

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func byRole(t *testing.T, norm []Normalized, role Role, index int) Normalized {
	t.Helper()
	for _, n := range norm {
		if n.Role == role && n.Index == index {
			return n
		}
	}
	t.Fatalf("no normalized segment for %s #%d", role, index)
	return Normalized{}
}

func TestNormalizeAutoChain(t *testing.T) {
	norm, warnings := Normalize([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 600, Use: true},
		{Role: Riser, ID: 19.5, OD: 21, Depth: 100, Use: true},
		{Role: Intermediate, ID: 12.347, OD: 13.375, Depth: 300, Use: true},
	}, Options{})
	require.Empty(t, warnings)
	require.Len(t, norm, 3)

	// Sorted into role order regardless of input order
	assert.Equal(t, []Role{Riser, Intermediate, Production}, []Role{norm[0].Role, norm[1].Role, norm[2].Role})

	assert.Equal(t, 0.0, norm[0].DrawStart)
	assert.Equal(t, 100.0, norm[1].DrawStart)
	assert.Equal(t, 300.0, norm[2].DrawStart)
	for _, n := range norm {
		assert.True(t, n.ShouldDraw, n.Role)
		assert.True(t, n.ShouldCountVolume, n.Role)
	}
	assert.Equal(t, 300.0, norm[2].PhysicalLength)
}

func TestNormalizeExplicitTop(t *testing.T) {
	norm, _ := Normalize([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 2000, Use: true},
		{Role: Reservoir, ID: 6.184, OD: 7, Top: f(1900), Depth: 2500, Use: true},
	}, Options{})

	res := byRole(t, norm, Reservoir, 0)
	assert.Equal(t, 1900.0, res.DrawStart, "explicit top is drawn from even when shallower than the running depth")
	assert.True(t, res.ShouldCountVolume)
	assert.Equal(t, 600.0, res.PhysicalLength)
}

func TestNormalizeExclusion(t *testing.T) {
	segments := []Segment{
		{Role: Conductor, ID: 28, OD: 30, Depth: 100, Use: true},
		{Role: Surface, ID: 18.73, OD: 20, Depth: 500, Use: true},
		{Role: Intermediate, ID: 12.347, OD: 13.375, Depth: 1500, Use: true},
	}

	norm, _ := Normalize(segments, Options{})
	conductor := byRole(t, norm, Conductor, 0)
	surface := byRole(t, norm, Surface, 0)
	assert.True(t, conductor.Excluded)
	assert.True(t, conductor.ShouldDraw)
	assert.False(t, conductor.ShouldCountVolume)
	assert.True(t, surface.Excluded)
	assert.True(t, surface.ShouldDraw)
	assert.False(t, surface.ShouldCountVolume)

	// Excluded strings do not advance the chain
	assert.Equal(t, 0.0, byRole(t, norm, Intermediate, 0).DrawStart)

	// Explicit flags override what the segments say
	no := false
	norm, _ = Normalize(segments, Options{SurfaceInUse: &no, IntermediateInUse: &no})
	assert.False(t, byRole(t, norm, Conductor, 0).Excluded)
	assert.False(t, byRole(t, norm, Surface, 0).Excluded)
	assert.Equal(t, 100.0, byRole(t, norm, Surface, 0).DrawStart)
}

func TestNormalizeInvalidInput(t *testing.T) {
	norm, warnings := Normalize([]Segment{
		{Role: Surface, ID: math.NaN(), OD: 20, Depth: 500, Use: true},
		{Role: Intermediate, ID: 12.347, OD: 13.375, Depth: math.Inf(1), Use: true},
		{Role: Production, ID: 8.535, OD: 9.625, Top: f(math.NaN()), Depth: 2000, Use: true},
		{Role: "casing_x", ID: 5, OD: 6, Depth: 100, Use: true},
	}, Options{})

	require.Len(t, norm, 3)
	assert.False(t, byRole(t, norm, Surface, 0).Valid)
	assert.False(t, byRole(t, norm, Intermediate, 0).Valid)
	assert.False(t, byRole(t, norm, Surface, 0).ShouldDraw)

	prod := byRole(t, norm, Production, 0)
	assert.True(t, prod.Valid)
	assert.Nil(t, prod.Top, "a NaN top is absent")
	assert.Equal(t, 0.0, prod.DrawStart)

	assert.Len(t, warnings, 3)
}

func TestNormalizeOpenHoleTop(t *testing.T) {
	norm, _ := Normalize([]Segment{
		{Role: Intermediate, ID: 12.347, OD: 13.375, Depth: 1500, Use: true},
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 2000, Use: true},
		{Role: UpperCompletion, ID: 4.892, OD: 5.5, Depth: 2400, Use: true},
		{Role: OpenHole, ID: 8.5, Top: f(10), Depth: 2600, Use: true},
	}, Options{})

	oh := byRole(t, norm, OpenHole, 0)
	require.NotNil(t, oh.Top)
	assert.Equal(t, 2000.0, *oh.Top, "open hole starts at the deepest casing shoe, user top ignored")
	assert.Equal(t, 8.5, oh.OD, "open hole OD defaults to its ID")
	assert.True(t, oh.ShouldCountVolume)

	norm, warnings := Normalize([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 2000, Use: false},
		{Role: OpenHole, ID: 8.5, Depth: 2600, Use: true},
	}, Options{})
	assert.False(t, byRole(t, norm, OpenHole, 0).ShouldCountVolume)
	require.Len(t, warnings, 1)
	assert.Equal(t, OpenHole, warnings[0].Role)
}

func TestNormalizeTubingChainsSeparately(t *testing.T) {
	norm, _ := Normalize([]Segment{
		{Role: Production, ID: 8.535, OD: 9.625, Depth: 3000, Use: true},
		{Role: UpperCompletion, Index: 1, ID: 3.958, OD: 4.5, Depth: 2500, Use: true},
		{Role: UpperCompletion, Index: 0, ID: 4.892, OD: 5.5, Depth: 1000, Use: true},
	}, Options{})

	assert.Equal(t, 0.0, byRole(t, norm, UpperCompletion, 0).DrawStart)
	assert.Equal(t, 1000.0, byRole(t, norm, UpperCompletion, 1).DrawStart)
}

func TestParseRole(t *testing.T) {
	tests := map[string]Role{
		"tie-back":     Tieback,
		"Small Liner":  SmallLiner,
		"open hole":    OpenHole,
		"tubing":       UpperCompletion,
		" Production ": Production,
	}
	for in, want := range tests {
		got, ok := ParseRole(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseRole("packer")
	assert.False(t, ok)
}
