package ports

import "context"

// Rect is an axis-aligned rectangle in floating-point coordinates.
// It is used both for on-screen element geometry and for raster-space
// regions derived from it.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Element exposes the resolved geometry and style of a host element.
// The pipeline never touches the host surface directly; any UI toolkit
// or scene description can implement this.
type Element interface {
	// Rect returns the element's on-screen bounding rectangle.
	Rect() Rect

	// Style returns the resolved value of a style property, or the
	// empty string when the property is not set.
	Style(prop string) string

	// Text returns the element's textual content.
	Text() string
}

// ImageRef identifies the source image of an export.
type ImageRef interface {
	// Fetch returns the encoded image bytes. Fetching may block on I/O;
	// it is the only asynchronous boundary of an export.
	Fetch(ctx context.Context) ([]byte, error)
}
