package units

import "math"

// Conversion constants

const (
	// MetersPerInch converts diameters given in inches to meters
	MetersPerInch = 0.0254

	// LitersPerCubicMeter converts linear capacities (L/m) to areas (m²)
	LitersPerCubicMeter = 1000.0

	// Zeroish is the tolerance used to merge depths and discard empty intervals.
	// Anything closer than a micrometer is the same depth.
	Zeroish = 1e-6
)

// Finite reports whether x is a usable number (not NaN, not ±Inf)
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// InchesToMeters converts inches to meters. Non-finite input yields 0.
func InchesToMeters(x float64) float64 {
	if !Finite(x) {
		return 0
	}
	return x * MetersPerInch
}

// AreaFromDiameterInches returns the cross-sectional area (m²) of a circle
// whose DIAMETER is d inches: π·(d/2·0.0254)².
//
// This is the single diameter→area conversion in the module. Both bore (ID)
// and outer (OD) areas go through it.
func AreaFromDiameterInches(d float64) float64 {
	if !Finite(d) || d <= 0 {
		return 0
	}
	r := InchesToMeters(d) / 2
	return math.Pi * r * r
}

// AreaFromLinearCapacity converts a linear capacity in liters per meter to a
// cross-sectional area in m² (L/m ⇒ m³/m ⇒ m²).
func AreaFromLinearCapacity(lPerM float64) float64 {
	if !Finite(lPerM) || lPerM <= 0 {
		return 0
	}
	return lPerM / LitersPerCubicMeter
}

// LinearCapacityFromDiameterInches is the inverse view of AreaFromLinearCapacity:
// the capacity in L/m of a bore with diameter d inches.
func LinearCapacityFromDiameterInches(d float64) float64 {
	return AreaFromDiameterInches(d) * LitersPerCubicMeter
}

// BoreArea returns the bore area of a pipe. A positive linear capacity takes
// precedence over the inner diameter, since catalog entries quote L/m.
func BoreArea(id, lPerM float64) float64 {
	if a := AreaFromLinearCapacity(lPerM); a > 0 {
		return a
	}
	return AreaFromDiameterInches(id)
}

// SteelCrossSectionArea returns the steel area between the outer diameter and
// the bore, clamped at zero so OD < ID data never produces negative steel.
func SteelCrossSectionArea(od, id, lPerM float64) float64 {
	return math.Max(0, AreaFromDiameterInches(od)-BoreArea(id, lPerM))
}

// DiameterInchesFromArea is the inverse of AreaFromDiameterInches
func DiameterInchesFromArea(area float64) float64 {
	if !Finite(area) || area <= 0 {
		return 0
	}
	return 2 * math.Sqrt(area/math.Pi) / MetersPerInch
}
