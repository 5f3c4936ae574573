package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/wellvol/internal/units"
	"github.com/alexiusacademia/wellvol/internal/well"
)

var roleColors = map[well.Role]color.RGBA{
	well.Riser:           {R: 90, G: 90, B: 90, A: 255},
	well.Conductor:       {R: 120, G: 72, B: 40, A: 255},
	well.Surface:         {R: 70, G: 110, B: 170, A: 255},
	well.Intermediate:    {R: 40, G: 140, B: 120, A: 255},
	well.Production:      {R: 200, G: 120, B: 30, A: 255},
	well.Tieback:         {R: 210, G: 160, B: 40, A: 255},
	well.Reservoir:       {R: 170, G: 50, B: 60, A: 255},
	well.SmallLiner:      {R: 130, G: 80, B: 160, A: 255},
	well.UpperCompletion: {R: 20, G: 20, B: 20, A: 255},
}

var (
	openHoleColor  = color.RGBA{R: 222, G: 200, B: 160, A: 255}
	drillPipeColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	poiColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// depthTicks labels the negated depth axis with positive meters
type depthTicks struct{}

func (depthTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = fmt.Sprintf("%g", -ticks[i].Value)
		}
	}
	return ticks
}

// ExportWellDiagram exports the well schematic to an image file. The format
// follows the extension (.png, .svg, .pdf); anything else is saved as png.
func ExportWellDiagram(res *well.Result, title, filename string) error {
	if len(res.CasingsToDraw) == 0 {
		return fmt.Errorf("nothing to draw")
	}

	p := plot.New()
	p.Title.Text = title
	if p.Title.Text == "" {
		p.Title.Text = "Well Schematic"
	}
	p.X.Label.Text = "Radius (in)"
	p.Y.Label.Text = "Depth (m)"
	p.Y.Tick.Marker = depthTicks{}
	p.Legend.Top = true

	// Depth increases downward: plot against -depth
	maxOD := 0.0
	legend := map[string]bool{}
	for _, item := range res.CasingsToDraw {
		maxOD = math.Max(maxOD, item.OD)
		if item.Role.IsInnerString() {
			continue
		}
		var err error
		if item.Role == well.OpenHole {
			err = addHole(p, item)
		} else {
			err = addWalls(p, item, legend)
		}
		if err != nil {
			return err
		}
	}

	if inner := res.InnerString; inner != nil {
		for _, sec := range inner.Sections {
			if err := addSection(p, inner.Kind, sec, legend); err != nil {
				return err
			}
		}
	}

	if res.Plug != nil {
		y := -res.Plug.Depth
		x := maxOD/2 + 1
		poi, err := plotter.NewLine(plotter.XYs{{X: -x, Y: y}, {X: x, Y: y}})
		if err != nil {
			return err
		}
		poi.LineStyle.Width = vg.Points(1.5)
		poi.LineStyle.Color = poiColor
		poi.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(poi)

		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: x, Y: y}},
			Labels: []string{fmt.Sprintf("POI %.1f m", res.Plug.Depth)},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	p.X.Min = -(maxOD/2 + 2)
	p.X.Max = maxOD/2 + 4
	p.Y.Max = 0

	width := 6 * vg.Inch
	height := 9 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// rect is a wall or hole cross-section between two radii and two depths
func rect(x0, x1, top, bottom float64) plotter.XYs {
	return plotter.XYs{
		{X: x0, Y: -top},
		{X: x1, Y: -top},
		{X: x1, Y: -bottom},
		{X: x0, Y: -bottom},
	}
}

func addHole(p *plot.Plot, item well.DrawItem) error {
	r := item.OD / 2
	hole, err := plotter.NewPolygon(rect(-r, r, item.PrevDepth, item.Depth))
	if err != nil {
		return err
	}
	hole.Color = openHoleColor
	hole.LineStyle.Color = openHoleColor
	p.Add(hole)
	p.Legend.Add(well.OpenHole.Title(), hole)
	return nil
}

func addWalls(p *plot.Plot, item well.DrawItem, legend map[string]bool) error {
	c := roleColors[item.Role]
	if item.Excluded {
		c.A = 90
	}
	outer, inner := item.OD/2, item.ID/2
	for _, side := range []float64{-1, 1} {
		wall, err := plotter.NewPolygon(rect(side*outer, side*inner, item.PrevDepth, item.Depth))
		if err != nil {
			return err
		}
		wall.Color = c
		wall.LineStyle.Color = c
		p.Add(wall)

		name := item.Role.Title()
		if side > 0 && !legend[name] {
			legend[name] = true
			p.Legend.Add(name, wall)
		}
	}

	shoe, err := plotter.NewScatter(plotter.XYs{
		{X: -outer, Y: -item.Depth},
		{X: outer, Y: -item.Depth},
	})
	if err != nil {
		return err
	}
	shoe.GlyphStyle.Color = c
	shoe.GlyphStyle.Radius = vg.Points(3)
	shoe.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(shoe)
	return nil
}

func addSection(p *plot.Plot, kind well.StringMode, sec well.StringSection, legend map[string]bool) error {
	c := roleColors[well.UpperCompletion]
	name := well.UpperCompletion.Title()
	if kind == well.ModeDrillPipe {
		c = drillPipeColor
		name = "Drill pipe"
	}

	id := sec.ID
	if id <= 0 {
		id = units.DiameterInchesFromArea(sec.BoreArea)
	}
	outer, inner := sec.OD/2, id/2
	for _, side := range []float64{-1, 1} {
		wall, err := plotter.NewPolygon(rect(side*outer, side*inner, sec.Top, sec.Depth))
		if err != nil {
			return err
		}
		wall.Color = c
		wall.LineStyle.Color = c
		p.Add(wall)

		if side > 0 && !legend[name] {
			legend[name] = true
			p.Legend.Add(name, wall)
		}
	}
	return nil
}
