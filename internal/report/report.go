// Package report renders well volume results as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/wellvol/internal/diagram"
	"github.com/alexiusacademia/wellvol/internal/well"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// Report writes result sections to w
type Report struct {
	w io.Writer
	f *Formatter
}

// New creates a report writer using the number conventions of lang
func New(w io.Writer, lang string) *Report {
	return &Report{w: w, f: NewFormatter(lang)}
}

// Title prints the banner heading
func (r *Report) Title(title string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, heavyRule)
	fmt.Fprintf(r.w, "     %s\n", strings.ToUpper(title))
	fmt.Fprintln(r.w, heavyRule)
	fmt.Fprintln(r.w)
}

func (r *Report) section(name string) {
	fmt.Fprintf(r.w, "%s:\n", name)
	fmt.Fprintln(r.w, lightRule)
}

func (r *Report) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
}

// Segments prints the input strings as the engine sees them
func (r *Report) Segments(segments []well.Segment) {
	r.section("WELL SCHEMATIC INPUT")
	w := r.table()
	fmt.Fprintf(w, "  Segment\tSize\tID\tOD\tTop\tShoe\tUse\n")
	fmt.Fprintf(w, "  ───────\t────\t──\t──\t───\t────\t───\n")
	for _, s := range segments {
		use := "yes"
		if !s.Use {
			use = "no"
		}
		label := s.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			segmentName(s.Role, s.Index), label,
			r.f.Diameter(s.ID), r.f.Diameter(s.OD),
			r.f.Depth(s.Top), r.f.Length(s.Depth), use)
	}
	w.Flush()
	fmt.Fprintln(r.w)
}

// Volumes prints the per-segment volume table
func (r *Report) Volumes(res *well.Result) {
	r.section("VOLUME PER SEGMENT")
	w := r.table()
	fmt.Fprintf(w, "  Segment\tOwned intervals\tLength\tVolume\tCapacity\tNote\n")
	fmt.Fprintf(w, "  ───────\t───────────────\t──────\t──────\t────────\t────\n")
	for _, v := range res.PerCasingVolumes {
		if !v.Use {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			segmentName(v.Role, v.Index), r.intervals(v),
			r.f.Length(v.IncludedLength), r.f.Volume(v.Volume),
			r.f.Capacity(v.PerMeter), r.note(res, v))
	}
	w.Flush()
	fmt.Fprintln(r.w)
}

func (r *Report) intervals(v well.SegmentVolume) string {
	if v.Role.IsInnerString() {
		return "(inner string)"
	}
	if len(v.Intervals) == 0 {
		return "-"
	}
	parts := make([]string, len(v.Intervals))
	for i, iv := range v.Intervals {
		parts[i] = r.f.Sprintf("%.1f–%.1f", iv.Start, iv.End)
	}
	return strings.Join(parts, ", ")
}

func (r *Report) note(res *well.Result, v well.SegmentVolume) string {
	switch {
	case v.Excluded:
		return "excluded, " + r.f.Length(v.PhysicalLength) + " physical"
	case v.Role.IsInnerString() && res.DPMode:
		return "not run (drill pipe)"
	case v.Role.IsInnerString():
		return "bore volume"
	case v.Volume == 0 && v.PhysicalLength > 0:
		return "shadowed by a narrower string"
	}
	return ""
}

// Totals prints the well totals
func (r *Report) Totals(res *well.Result) {
	r.section("TOTALS")
	w := r.table()
	fmt.Fprintf(w, "  Well bottom:\t%s\n", r.f.Length(res.WellBottom))
	fmt.Fprintf(w, "  Casing/hole volume:\t%s\n", r.f.Volume(res.CasingVolume))
	if res.InnerString != nil {
		fmt.Fprintf(w, "  Inner string steel:\t%s\n", r.f.Volume(res.SteelVolume))
	}
	w.Flush()
	fmt.Fprintln(r.w)

	lines := []string{"Total volume: " + r.f.Volume(res.TotalVolume)}
	if res.InnerString != nil && res.TotalVolume != res.CasingVolume {
		lines = append(lines, "(inner string steel subtracted)")
	}
	fmt.Fprint(r.w, diagram.DrawSummaryBox("TOTAL WELL VOLUME", lines))
	fmt.Fprintln(r.w)
}

// Plug prints the split at the point of interest
func (r *Report) Plug(res *well.Result) {
	if res.Plug == nil {
		return
	}
	r.section(r.f.Sprintf("POINT OF INTEREST AT %.1f m", res.Plug.Depth))
	w := r.table()
	fmt.Fprintf(w, "  Above POI:\t%s\n", r.f.Volume(res.Plug.Above))
	fmt.Fprintf(w, "  Below POI:\t%s\n", r.f.Volume(res.Plug.Below))
	w.Flush()
	fmt.Fprintln(r.w)
}

// InnerString prints the bore/annulus breakdown around tubing or drill pipe
func (r *Report) InnerString(res *well.Result) {
	inner := res.InnerString
	if inner == nil {
		return
	}
	name := "TUBING"
	if inner.Kind == well.ModeDrillPipe {
		name = "DRILL PIPE"
	}
	r.section(name + " BREAKDOWN")

	w := r.table()
	fmt.Fprintf(w, "  Section\tTop\tShoe\tOD\tBore volume\n")
	fmt.Fprintf(w, "  ───────\t───\t────\t──\t───────────\n")
	for i, sec := range inner.Sections {
		label := sec.Label
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", label,
			r.f.Length(sec.Top), r.f.Length(sec.Depth), r.f.Diameter(sec.OD), r.f.Volume(sec.BoreVolume))
	}
	w.Flush()
	fmt.Fprintln(r.w)

	w = r.table()
	if res.Plug != nil {
		fmt.Fprintf(w, "  \tAbove POI\tBelow POI\tTotal\n")
		r.breakdownRow(w, "String bore", inner.Above.Bore, inner.Below.Bore, inner.Total.Bore)
		r.breakdownRow(w, "Annulus", inner.Above.Annulus, inner.Below.Annulus, inner.Total.Annulus)
		r.breakdownRow(w, "Open casing", inner.Above.OpenCasing, inner.Below.OpenCasing, inner.Total.OpenCasing)
		r.breakdownRow(w, "Steel", inner.Above.Steel, inner.Below.Steel, inner.Total.Steel)
	} else {
		fmt.Fprintf(w, "  String bore:\t%s\n", r.f.Volume(inner.Total.Bore))
		fmt.Fprintf(w, "  Annulus:\t%s\n", r.f.Volume(inner.Total.Annulus))
		fmt.Fprintf(w, "  Open casing:\t%s\n", r.f.Volume(inner.Total.OpenCasing))
		fmt.Fprintf(w, "  Steel:\t%s\n", r.f.Volume(inner.Total.Steel))
	}
	w.Flush()
	fmt.Fprintln(r.w)

	fmt.Fprintf(r.w, "  String shoe at %s", r.f.Length(inner.Shoe))
	if res.Plug != nil {
		if inner.CrossesPOI {
			fmt.Fprintf(r.w, " (crosses the POI)")
		} else {
			fmt.Fprintf(r.w, " (above the POI)")
		}
	}
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  Casing volume below shoe: %s\n", r.f.Volume(inner.CasingVolumeBelowShoe))
	fmt.Fprintln(r.w)
}

func (r *Report) breakdownRow(w io.Writer, name string, above, below, total float64) {
	fmt.Fprintf(w, "  %s:\t%s\t%s\t%s\n", name, r.f.Volume(above), r.f.Volume(below), r.f.Volume(total))
}

// Warnings prints advisory messages
func (r *Report) Warnings(res *well.Result) {
	if len(res.Warnings) == 0 {
		return
	}
	r.section("WARNINGS")
	for _, warn := range res.Warnings {
		fmt.Fprintf(r.w, "  ⚠ %s\n", warn)
	}
	fmt.Fprintln(r.w)
}

// Full prints every section of a result
func (r *Report) Full(segments []well.Segment, res *well.Result) {
	r.Segments(segments)
	r.Volumes(res)
	r.Totals(res)
	r.Plug(res)
	r.InnerString(res)
	r.Warnings(res)
}

func segmentName(role well.Role, index int) string {
	if role == well.UpperCompletion {
		return fmt.Sprintf("%s #%d", role.Title(), index+1)
	}
	return role.Title()
}
