package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alexiusacademia/wellvol/internal/units"
)

// Formatter prints quantities with fixed precision per unit and the
// decimal/grouping conventions of a language.
//
// Volumes are always 2 decimals (m³), lengths 1 decimal (m), diameters
// 3 decimals (in) and capacities 2 decimals (L/m), in every view.
type Formatter struct {
	p *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 tag. Unknown tags fall back
// to English.
func NewFormatter(lang string) *Formatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

// Volume formats m³
func (f *Formatter) Volume(v float64) string {
	return f.p.Sprintf("%.2f m³", v)
}

// Length formats meters
func (f *Formatter) Length(v float64) string {
	return f.p.Sprintf("%.1f m", v)
}

// Diameter formats inches
func (f *Formatter) Diameter(v float64) string {
	if v <= 0 {
		return "-"
	}
	return f.p.Sprintf("%.3f in", v)
}

// Capacity formats a per-meter volume (m³/m) as L/m
func (f *Formatter) Capacity(m3PerM float64) string {
	return f.p.Sprintf("%.2f L/m", m3PerM*units.LitersPerCubicMeter)
}

// Depth formats an optional depth
func (f *Formatter) Depth(v *float64) string {
	if v == nil {
		return "auto"
	}
	return f.Length(*v)
}

// Sprintf exposes the localized printer
func (f *Formatter) Sprintf(format string, args ...interface{}) string {
	return f.p.Sprintf(format, args...)
}
