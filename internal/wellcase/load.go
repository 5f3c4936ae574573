package wellcase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/wellvol/internal/catalog"
	"github.com/alexiusacademia/wellvol/internal/log"
	"github.com/alexiusacademia/wellvol/internal/well"
)

// Format is a case file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from the file extension, YAML by default
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadFromFile loads and validates a case file
func LoadFromFile(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded case %q from %s with %d segments", c.Name, path, len(c.Segments))
	return c, nil
}

// Parse decodes and validates a case
func Parse(data []byte, format Format) (*Case, error) {
	var c Case
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &c)
	default:
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes a case
func Marshal(c *Case, format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(c, "", "  ")
	}
	return yaml.Marshal(c)
}

// Input converts the case into engine input. Sizes are resolved against the
// catalog; values given explicitly always win over catalog values.
func (c *Case) Input() ([]well.Segment, well.Options) {
	segments := make([]well.Segment, 0, len(c.Segments))
	indices := c.indices()
	for i, in := range c.Segments {
		role, _ := well.ParseRole(in.Role)
		seg := well.Segment{
			Role:  role,
			Index: indices[i],
			Label: in.Size,
			ID:    in.ID.Or(0),
			OD:    in.OD.Or(0),
			Top:   in.Top.Ptr(),
			Depth: in.Depth.Or(0),
			Use:   in.Use == nil || *in.Use,
			Drift: in.Drift.Ptr(),
			LPerM: in.LPerM.Ptr(),
		}
		if in.Size != "" {
			resolveSize(&seg, role)
		}
		segments = append(segments, seg)
	}

	opts := well.Options{
		PlugEnabled: c.Plug.Enabled,
		PlugDepth:   c.Plug.Depth.Or(-1),
		SubtractEOD: c.SubtractEOD,
	}

	if c.DrillPipe != nil {
		dp := &well.DrillPipe{Mode: well.StringMode(c.DrillPipe.Mode)}
		for _, p := range c.DrillPipe.Pipes {
			pipe := well.Pipe{
				Size:   p.Size,
				Length: p.Length.Or(0),
				LPerM:  p.LPerM.Or(0),
				OD:     p.OD.Or(0),
				ID:     p.ID.Or(0),
			}
			if t, ok := catalog.Lookup(catalog.DrillPipe, p.Size); ok {
				if pipe.OD == 0 {
					pipe.OD = t.OD
				}
				if pipe.LPerM == 0 && pipe.ID == 0 {
					pipe.LPerM = t.Capacity()
				}
			} else if p.Size != "" && (pipe.OD == 0 || (pipe.LPerM == 0 && pipe.ID == 0)) {
				log.Warnf("drill pipe size %q not in catalog", p.Size)
			}
			dp.Pipes = append(dp.Pipes, pipe)
		}
		opts.DrillPipe = dp
	}

	return segments, opts
}

// resolveSize fills missing diameters from the catalog entry named by the
// segment label
func resolveSize(seg *well.Segment, role well.Role) {
	kind := catalog.Casing
	if role.IsInnerString() {
		kind = catalog.Tubing
	}
	t, ok := catalog.Lookup(kind, seg.Label)
	if !ok {
		log.Warnf("%s size %q not in the %s catalog", role.Title(), seg.Label, kind)
		return
	}
	if seg.ID == 0 {
		seg.ID = t.ID
	}
	if seg.OD == 0 {
		seg.OD = t.OD
	}
	if seg.Drift == nil && t.Drift > 0 {
		drift := t.Drift
		seg.Drift = &drift
	}
	if seg.LPerM == nil && t.LPerM > 0 {
		lPerM := t.LPerM
		seg.LPerM = &lPerM
	}
}
