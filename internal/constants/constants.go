// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

import "time"

// Preview constants
const (
	// DefaultPreviewSide is the longer side, in pixels, of a preview image
	DefaultPreviewSide = 800

	// MaxPreviewSide caps the preview size a client may ask for
	MaxPreviewSide = 2400
)

// Server timeouts
const (
	// RequestTimeout bounds a single API request, rendering included
	RequestTimeout = 2 * time.Minute

	// ReadTimeout bounds reading a request, uploads included
	ReadTimeout = 30 * time.Second

	// IdleTimeout closes idle keep-alive connections
	IdleTimeout = 60 * time.Second

	// ShutdownTimeout is how long serve waits for in-flight renders on exit
	ShutdownTimeout = 30 * time.Second
)
