package wellcase

import (
	"github.com/alexiusacademia/wellvol/internal/units"
	"github.com/alexiusacademia/wellvol/internal/well"
)

// Example returns a complete offshore well: riser to open hole, a tapered
// upper completion and a drill string that can be switched on.
func Example() *Case {
	off := false
	return &Case{
		Name:        "Example offshore well",
		Description: "Subsea well with 7in reservoir liner and tapered tubing",
		Segments: []SegmentInput{
			{Role: "riser", Size: `21" riser`, Depth: units.Num(380)},
			{Role: "conductor", Size: `30" 310#`, Top: units.Num(380), Depth: units.Num(460)},
			{Role: "surface", Size: `20" 133#`, Top: units.Num(380), Depth: units.Num(1050)},
			{Role: "intermediate", Size: `13-3/8" 72#`, Top: units.Num(380), Depth: units.Num(2200)},
			{Role: "production", Size: `9-5/8" 53.5#`, Top: units.Num(380), Depth: units.Num(3277.5)},
			{Role: "reservoir", Size: `7" 29#`, Top: units.Num(3150), Depth: units.Num(4065)},
			{Role: "upper_completion", Size: `5-1/2" 17#`, Top: units.Num(380), Depth: units.Num(2500)},
			{Role: "upper_completion", Size: `4-1/2" 12.6#`, Depth: units.Num(3200)},
			{Role: "open_hole", ID: units.Num(6), Depth: units.Num(4300)},
			{Role: "small_liner", Size: `4-1/2" 12.6#`, Top: units.Num(3950), Depth: units.Num(4250), Use: &off},
		},
		Plug: PlugInput{Enabled: true, Depth: units.Num(3000)},
		DrillPipe: &DrillPipeInput{
			Mode: string(well.ModeTubing),
			Pipes: []PipeInput{
				{Size: `5-1/2" 21.9#`, Length: units.Num(2400)},
				{Size: `5" 19.5#`, Length: units.Num(1500)},
			},
		},
	}
}
