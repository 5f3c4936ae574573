package well

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDrawOrder(t *testing.T) {
	norm, _ := Normalize([]Segment{
		{Role: Conductor, ID: 28, OD: 30, Depth: 100, Use: true},
		{Role: Surface, ID: 18.73, OD: 20, Depth: 500, Use: true},
		{Role: Production, ID: 8.535, OD: 9.625, Top: f(1400), Depth: 2500, Use: true},
		{Role: Tieback, ID: 8.681, OD: 9.625, Top: f(0), Depth: 1400, Use: true},
		{Role: Reservoir, ID: 6.184, OD: 7, Top: f(2400), Depth: 3000, Use: true},
		{Role: SmallLiner, ID: 3.958, OD: 4.5, Depth: 2900, Use: false},
		{Role: UpperCompletion, ID: 4.892, OD: 5.5, Depth: 2300, Use: true},
		{Role: OpenHole, ID: 6, Depth: 3200, Use: true},
	}, Options{})

	items := DrawOrder(norm, true)
	got := make([]Role, len(items))
	for i, item := range items {
		got[i] = item.Role
	}
	want := []Role{OpenHole, Conductor, Surface, Tieback, Production, Reservoir, UpperCompletion}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("draw order mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, -10, items[0].Z)
	assert.Equal(t, 3000.0, items[0].PrevDepth, "open hole is drawn from the deepest shoe")
	assert.Equal(t, 1400.0, items[4].PrevDepth)

	withoutTubing := DrawOrder(norm, false)
	assert.Len(t, withoutTubing, len(items)-1)
}

func TestDrawOrderWiderFirstAtSameStart(t *testing.T) {
	norm, _ := Normalize([]Segment{
		{Role: Production, ID: 6.184, OD: 7, Top: f(0), Depth: 1000, Use: true},
		{Role: Tieback, ID: 8.535, OD: 9.625, Top: f(0), Depth: 1000, Use: true},
	}, Options{})

	items := DrawOrder(norm, true)
	assert.Equal(t, Tieback, items[0].Role)
	assert.Equal(t, Production, items[1].Role)
}
