package render

// Export limits shared by the CLI, the HTTP API and the sinks.
const (
	// MaxScale bounds the raster scale factor.
	MaxScale = 16.0

	// MaxStrokeWidth bounds the outline width in canvas units.
	MaxStrokeWidth = 100.0

	// MaxPixels bounds the pixel count of a single raster image.
	MaxPixels = 100_000_000
)
