package wellcase

import (
	"fmt"

	"github.com/alexiusacademia/wellvol/internal/units"
	"github.com/alexiusacademia/wellvol/internal/well"
)

// Case is a well description as stored in a case file.
// Numeric fields accept numbers or locale-formatted strings ("3277,5").
type Case struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Segments []SegmentInput `json:"segments" yaml:"segments"`

	// Point of interest
	Plug PlugInput `json:"plug,omitzero" yaml:"plug,omitempty"`

	DrillPipe   *DrillPipeInput `json:"drill_pipe,omitempty" yaml:"drill_pipe,omitempty"`
	SubtractEOD bool            `json:"subtract_eod,omitempty" yaml:"subtract_eod,omitempty"`
}

// SegmentInput is one casing, liner, tubing section or open hole
type SegmentInput struct {
	Role string `json:"role" yaml:"role"`

	// Tells tapered upper completion sections apart. Sections without one
	// are numbered in file order.
	Index *int `json:"index,omitempty" yaml:"index,omitempty"`

	// Optional catalog label; fills missing id/od/drift
	Size string `json:"size,omitempty" yaml:"size,omitempty"`

	ID    units.Number `json:"id,omitzero" yaml:"id,omitempty"`       // in
	OD    units.Number `json:"od,omitzero" yaml:"od,omitempty"`       // in
	Top   units.Number `json:"top,omitzero" yaml:"top,omitempty"`     // m, absent chains to the previous string
	Depth units.Number `json:"depth,omitzero" yaml:"depth,omitempty"` // m
	Drift units.Number `json:"drift,omitzero" yaml:"drift,omitempty"` // in
	LPerM units.Number `json:"l_per_m,omitzero" yaml:"l_per_m,omitempty"`

	// Use defaults to true when omitted
	Use *bool `json:"use,omitempty" yaml:"use,omitempty"`
}

// PlugInput is the point-of-interest setting
type PlugInput struct {
	Enabled bool         `json:"enabled" yaml:"enabled"`
	Depth   units.Number `json:"depth,omitzero" yaml:"depth,omitempty"`
}

// DrillPipeInput selects the inner string
type DrillPipeInput struct {
	Mode  string      `json:"mode" yaml:"mode"` // tubing | drillpipe
	Pipes []PipeInput `json:"pipes" yaml:"pipes"`
}

// PipeInput is one drill-pipe section
type PipeInput struct {
	Size   string       `json:"size" yaml:"size"`
	Length units.Number `json:"length,omitzero" yaml:"length,omitempty"`
	LPerM  units.Number `json:"l_per_m,omitzero" yaml:"l_per_m,omitempty"`
	OD     units.Number `json:"od,omitzero" yaml:"od,omitempty"`
	ID     units.Number `json:"id,omitzero" yaml:"id,omitempty"`
}

// Validate checks the structure of a case. Numeric gaps are not errors;
// the engine skips what it cannot use.
func (c *Case) Validate() error {
	if len(c.Segments) == 0 {
		return &ValidationError{"case must have at least one segment"}
	}
	for i, s := range c.Segments {
		if _, ok := well.ParseRole(s.Role); !ok {
			return &ValidationError{msg: fmt.Sprintf("segment %d: unknown role %q", i+1, s.Role)}
		}
	}

	type key struct {
		role  well.Role
		index int
	}
	seen := map[key]int{}
	for i, index := range c.indices() {
		role, _ := well.ParseRole(c.Segments[i].Role)
		k := key{role, index}
		if prev, ok := seen[k]; ok {
			return &ValidationError{msg: fmt.Sprintf("segment %d: %s index %d already used by segment %d", i+1, role, index, prev+1)}
		}
		seen[k] = i
	}
	if c.DrillPipe != nil {
		switch well.StringMode(c.DrillPipe.Mode) {
		case well.ModeTubing, well.ModeDrillPipe:
		default:
			return &ValidationError{msg: fmt.Sprintf("drill pipe mode must be %q or %q, got %q", well.ModeTubing, well.ModeDrillPipe, c.DrillPipe.Mode)}
		}
	}
	return nil
}

// indices resolves the segment indices. Upper completion sections without
// an explicit index take their position among the sections in file order.
func (c *Case) indices() []int {
	out := make([]int, len(c.Segments))
	sections := 0
	for i, s := range c.Segments {
		role, _ := well.ParseRole(s.Role)
		switch {
		case s.Index != nil:
			out[i] = *s.Index
		case role.IsInnerString():
			out[i] = sections
		}
		if role.IsInnerString() {
			sections++
		}
	}
	return out
}

// ValidationError represents a case validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
