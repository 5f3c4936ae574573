package well

import (
	"fmt"
	"strings"
)

// Role identifies a string in the well schematic
type Role string

const (
	Riser           Role = "riser"
	Conductor       Role = "conductor"
	Surface         Role = "surface"
	Intermediate    Role = "intermediate"
	Production      Role = "production"
	Tieback         Role = "tieback"
	Reservoir       Role = "reservoir"
	SmallLiner      Role = "small_liner"
	UpperCompletion Role = "upper_completion"
	OpenHole        Role = "open_hole"
)

// Roles lists every role in declaration order, outermost/shallowest first
var Roles = []Role{
	Riser,
	Conductor,
	Surface,
	Intermediate,
	Production,
	Tieback,
	Reservoir,
	SmallLiner,
	UpperCompletion,
	OpenHole,
}

type roleInfo struct {
	order int
	z     int
	title string
}

// Draw priority: upper completion renders on top of everything, open hole behind
var roleTable = map[Role]roleInfo{
	Riser:           {order: 0, z: 0, title: "Riser"},
	Conductor:       {order: 1, z: -1, title: "Conductor"},
	Surface:         {order: 2, z: 1, title: "Surface casing"},
	Intermediate:    {order: 3, z: 2, title: "Intermediate casing"},
	Production:      {order: 4, z: 3, title: "Production casing"},
	Tieback:         {order: 5, z: 3, title: "Tie-back"},
	Reservoir:       {order: 6, z: 4, title: "Reservoir liner"},
	SmallLiner:      {order: 7, z: 0, title: "Small liner"},
	UpperCompletion: {order: 8, z: 10, title: "Upper completion"},
	OpenHole:        {order: 9, z: -10, title: "Open hole"},
}

// Valid reports whether r is one of the declared roles
func (r Role) Valid() bool {
	_, ok := roleTable[r]
	return ok
}

// Order is the declaration order, used for tie-breaks
func (r Role) Order() int {
	if info, ok := roleTable[r]; ok {
		return info.order
	}
	return len(roleTable)
}

// Z is the drawing priority
func (r Role) Z() int {
	return roleTable[r].z
}

// Title is the human-readable name
func (r Role) Title() string {
	if info, ok := roleTable[r]; ok {
		return info.title
	}
	return string(r)
}

// IsInnerString reports whether the role is run inside casing rather than
// owning depth itself
func (r Role) IsInnerString() bool {
	return r == UpperCompletion
}

// ParseRole accepts the canonical names plus the common spellings found in
// presets ("tie-back", "small liner", "Open Hole", "tubing").
func ParseRole(s string) (Role, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	switch key {
	case "tie_back":
		key = string(Tieback)
	case "uc", "tubing", "upper_completion_tubing":
		key = string(UpperCompletion)
	case "oh", "openhole":
		key = string(OpenHole)
	case "smallliner":
		key = string(SmallLiner)
	}
	r := Role(key)
	return r, r.Valid()
}

// Segment is one casing, liner, tubing section or open-hole interval.
// Diameters are in inches, depths in meters. Zero or non-finite numbers
// count as absent.
type Segment struct {
	Role  Role
	Index int // section number for tapered upper completions
	Label string

	ID    float64
	OD    float64
	Top   *float64 // nil chains onto the previous segment
	Depth float64  // shoe
	Use   bool

	Drift *float64 // min internal diameter, fit checks only
	LPerM *float64 // bore capacity in L/m, overrides ID for bore area
}

// StringMode selects which inner string is run
type StringMode string

const (
	ModeTubing    StringMode = "tubing"
	ModeDrillPipe StringMode = "drillpipe"
)

// Pipe is one drill-pipe section, stacked from surface in the order given
type Pipe struct {
	Size   string
	Length float64 // m
	LPerM  float64 // bore capacity in L/m
	OD     float64 // in
	ID     float64 // in, used when LPerM is absent
}

// DrillPipe describes the drill string input set
type DrillPipe struct {
	Mode  StringMode
	Pipes []Pipe
}

// Options controls a computation
type Options struct {
	PlugEnabled bool
	PlugDepth   float64 // m

	// Derived from the segments when nil
	SurfaceInUse      *bool
	IntermediateInUse *bool

	DrillPipe *DrillPipe

	// Subtract the inner string's steel displacement from the well volume
	SubtractEOD bool
}

// Warning is advisory metadata attached to a result
type Warning struct {
	Role    Role   `json:"role,omitempty"`
	Index   int    `json:"index,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Role == "" {
		return w.Message
	}
	if w.Role == UpperCompletion {
		return fmt.Sprintf("%s #%d: %s", w.Role.Title(), w.Index+1, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Role.Title(), w.Message)
}

// SegmentVolume is the per-segment outcome of a computation
type SegmentVolume struct {
	Role           Role       `json:"role"`
	Index          int        `json:"index"`
	Use            bool       `json:"use"`
	Excluded       bool       `json:"excluded,omitempty"`
	Volume         float64    `json:"volume"`          // m³
	IncludedLength float64    `json:"included_length"` // m
	PerMeter       float64    `json:"per_meter_m3"`    // m³/m
	PhysicalLength float64    `json:"physical_length"` // m
	Intervals      []Interval `json:"intervals,omitempty"`
}

// DrawItem is one visually drawn segment
type DrawItem struct {
	Role      Role    `json:"role"`
	Index     int     `json:"index"`
	ID        float64 `json:"id"`
	OD        float64 `json:"od"`
	Depth     float64 `json:"depth"`
	PrevDepth float64 `json:"prev_depth"`
	Z         int     `json:"z"`
	Excluded  bool    `json:"excluded,omitempty"`
}

// PlugSplit is the volume split at the point of interest
type PlugSplit struct {
	Depth float64 `json:"depth"`
	Above float64 `json:"above"`
	Below float64 `json:"below"`
}

// Result holds the output of Compute
type Result struct {
	TotalVolume  float64 `json:"total_volume"`  // m³, after SubtractEOD
	CasingVolume float64 `json:"casing_volume"` // m³, bore volume of owned casing intervals
	SteelVolume  float64 `json:"steel_volume"`  // m³, inner string steel inside casing
	WellBottom   float64 `json:"well_bottom"`   // m

	PerCasingVolumes []SegmentVolume `json:"per_casing_volumes"`
	CasingsToDraw    []DrawItem      `json:"casings_to_draw"`
	Spans            []Span          `json:"spans"`

	Plug        *PlugSplit         `json:"plug,omitempty"`
	InnerString *InnerStringResult `json:"inner_string,omitempty"`
	UCActive    bool               `json:"uc_active"`
	DPMode      bool               `json:"dp_mode"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// Volume returns the per-segment entry for a role and index
func (r *Result) Volume(role Role, index int) (SegmentVolume, bool) {
	for _, v := range r.PerCasingVolumes {
		if v.Role == role && v.Index == index {
			return v, true
		}
	}
	return SegmentVolume{}, false
}
