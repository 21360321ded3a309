// Package branding derives brand colour palettes from tenant logo images.
package branding

import "fmt"

// DecodeError reports logo bytes that could not be decoded as a supported
// raster image. The upload should be rejected upstream.
type DecodeError struct {
	Format string // detected format name, empty if detection failed
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("decode logo (format: %s): %v", e.Format, e.Err)
	}
	return fmt.Sprintf("decode logo: %v", e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidColorError reports a malformed colour string passed to the
// manual-override path.
type InvalidColorError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid colour %q (expected #rrggbb)", e.Value)
}
