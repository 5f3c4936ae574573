package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/wellvol/internal/well"
)

func ptr(v float64) *float64 { return &v }

func sampleResult(opts well.Options) *well.Result {
	segments := []well.Segment{
		{Role: well.Surface, ID: 18.73, OD: 20, Depth: 800, Use: true},
		{Role: well.Production, ID: 8.535, OD: 9.625, Depth: 3000, Use: true},
		{Role: well.Reservoir, ID: 6.184, OD: 7, Top: ptr(2900), Depth: 3500, Use: true},
		{Role: well.OpenHole, ID: 6, Depth: 3700, Use: true},
		{Role: well.UpperCompletion, ID: 4.892, OD: 5.5, Depth: 2800, Use: true},
	}
	return well.Compute(segments, opts)
}

func TestDrawASCIIWell(t *testing.T) {
	res := sampleResult(well.Options{PlugEnabled: true, PlugDepth: 3100})
	out := DrawASCIIWell(res, DefaultRows)

	assert.Contains(t, out, "WELL SCHEMATIC")
	assert.Contains(t, out, "Production casing shoe 3000.0 m")
	assert.Contains(t, out, "Reservoir liner shoe 3500.0 m")
	assert.Contains(t, out, "Upper completion #1 2800.0 m")
	assert.Contains(t, out, "◄─ POI 3100.0 m")
	assert.Contains(t, out, "3700 m")
	assert.Contains(t, out, string(stringWall))
	assert.Contains(t, out, string(openHoleWall))
	assert.NotContains(t, out, "Open hole shoe")

	// surface and bottom rules are drawn once each
	lines := strings.Split(out, "\n")
	var body int
	for _, l := range lines {
		if strings.Contains(l, "▄") || strings.Contains(l, "▀") {
			body++
		}
	}
	assert.Equal(t, 2, body)
}

func TestDrawASCIIWellDrillPipe(t *testing.T) {
	res := sampleResult(well.Options{
		DrillPipe: &well.DrillPipe{
			Mode:  well.ModeDrillPipe,
			Pipes: []well.Pipe{{Size: `5" 19.5#`, Length: 3300, OD: 5, LPerM: 9.26}},
		},
	})
	out := DrawASCIIWell(res, 12)

	assert.Contains(t, out, `DP 5" 19.5# 3300.0 m`)
	assert.Contains(t, out, "Drill pipe")
	assert.NotContains(t, out, "Upper completion")
	assert.NotContains(t, out, "POI")
}

func TestDrawASCIIWellEmpty(t *testing.T) {
	res := well.Compute(nil, well.Options{})
	assert.Contains(t, DrawASCIIWell(res, DefaultRows), "nothing to draw")
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("TOTAL WELL VOLUME", []string{"Total volume: 123.45 m³"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 5)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
	assert.Contains(t, box, "Total volume: 123.45 m³")
}

func TestExportWellDiagram(t *testing.T) {
	res := sampleResult(well.Options{PlugEnabled: true, PlugDepth: 3100})
	dir := t.TempDir()

	for _, name := range []string{"well.png", "well.svg", "nested/well.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, ExportWellDiagram(res, "Sample", path))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}

	// unknown extensions are saved as png
	path := filepath.Join(dir, "well.img")
	require.NoError(t, ExportWellDiagram(res, "", path))
	_, err := os.Stat(path + ".png")
	assert.NoError(t, err)
}

func TestExportWellDiagramEmpty(t *testing.T) {
	res := well.Compute(nil, well.Options{})
	assert.Error(t, ExportWellDiagram(res, "", filepath.Join(t.TempDir(), "x.png")))
}
