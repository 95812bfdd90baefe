// Package units converts physical print lengths into raster and document units.
package units

// Print resolution constants.
const (
	// DPI is the raster resolution every surface is rendered at.
	DPI = 300

	// PxPerMM converts millimeters to pixels at 300 DPI.
	PxPerMM = 11.811023622

	// InchesPerMM converts millimeters to inches for document pages.
	InchesPerMM = 0.0393701

	// PointsPerInch is the PDF user space unit.
	PointsPerInch = 72.0
)

// MMToPx converts a length in millimeters to pixels at 300 DPI.
// Negative input is passed through unchecked.
func MMToPx(mm float64) float64 {
	return mm * PxPerMM
}

// PxToMM converts a pixel length at 300 DPI back to millimeters.
func PxToMM(px float64) float64 {
	return px / PxPerMM
}

// MMToInches converts millimeters to inches.
func MMToInches(mm float64) float64 {
	return mm * InchesPerMM
}

// InchesToPoints converts inches to PDF points (1/72 inch).
func InchesToPoints(in float64) float64 {
	return in * PointsPerInch
}
