// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/user/bannerforge/pkg/ports"
)

// Element is a static implementation of ports.Element.
type Element struct {
	RectValue ports.Rect
	Styles    map[string]string
	TextValue string
}

func (m *Element) Rect() ports.Rect {
	return m.RectValue
}

func (m *Element) Style(prop string) string {
	return m.Styles[prop]
}

func (m *Element) Text() string {
	return m.TextValue
}

// ImageRef is a mock implementation of ports.ImageRef.
type ImageRef struct {
	FetchFunc func(ctx context.Context) ([]byte, error)
}

func (m *ImageRef) Fetch(ctx context.Context) ([]byte, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

var (
	_ ports.Element  = (*Element)(nil)
	_ ports.ImageRef = (*ImageRef)(nil)
)
