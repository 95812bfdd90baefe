// Package constants provides shared constants used across the codebase.
package constants

// Form field names of the render and preview endpoints
const (
	FieldImage      = "image"
	FieldPaper      = "paper"
	FieldWidthMM    = "width_mm"
	FieldHeightMM   = "height_mm"
	FieldGrid       = "grid"
	FieldColumns    = "columns"
	FieldRows       = "rows"
	FieldSpacingMM  = "spacing_mm"
	FieldMarginMM   = "margin_mm"
	FieldFit        = "fit"
	FieldBackground = "background"
	FieldFormat     = "format"
	FieldMaxSide    = "max_side"
)

// RenderIDHeader carries the id a render is logged under
const RenderIDHeader = "X-Render-ID"

// MultipartMemory is how much of a multipart form is kept in memory before
// spilling to temporary files
const MultipartMemory = 8 << 20
