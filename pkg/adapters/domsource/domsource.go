// Package domsource resolves banner elements from a live page using chromedp.
// It lets an export run against the same DOM the on-screen preview shows,
// satisfying the element and image contracts without a host UI toolkit.
package domsource

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/user/bannerforge/pkg/ports"
)

// Options configures the browser session.
type Options struct {
	Headless       bool
	ChromePath     string
	ViewportWidth  int
	ViewportHeight int
}

// Source drives a headless browser and resolves elements from it.
type Source struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// Launch starts the browser with the given options.
func (s *Source) Launch(ctx context.Context, opts Options) error {
	chromedpOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("disable-gpu", true),
	}

	if opts.Headless {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("headless", "new"))
	}
	if opts.ChromePath != "" {
		chromedpOpts = append(chromedpOpts, chromedp.ExecPath(opts.ChromePath))
	}

	s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(ctx, chromedpOpts...)
	s.ctx, s.cancel = chromedp.NewContext(s.allocCtx)

	if opts.ViewportWidth > 0 && opts.ViewportHeight > 0 {
		err := chromedp.Run(s.ctx, emulation.SetDeviceMetricsOverride(
			int64(opts.ViewportWidth), int64(opts.ViewportHeight), 1, false))
		if err != nil {
			return fmt.Errorf("set viewport: %w", err)
		}
	}

	return nil
}

// Navigate opens the page and waits for the document to be ready.
func (s *Source) Navigate(ctx context.Context, url string) error {
	if s.ctx == nil {
		return fmt.Errorf("browser not launched")
	}
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// Close shuts the browser down.
func (s *Source) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.allocCancel != nil {
		s.allocCancel()
	}
}

// elementSnapshot is the JSON shape returned by the resolve script.
type elementSnapshot struct {
	X      float64           `json:"x"`
	Y      float64           `json:"y"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Styles map[string]string `json:"styles"`
	Text   string            `json:"text"`
}

// Resolve snapshots the bounding rectangle, the requested computed style
// properties and the text content of the first element matching the
// selector. The snapshot is taken once; later DOM mutations do not leak
// into a running export.
func (s *Source) Resolve(selector string, props []string) (ports.Element, error) {
	script := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return null;
		const r = el.getBoundingClientRect();
		const cs = getComputedStyle(el);
		const styles = {};
		for (const p of %s) styles[p] = cs.getPropertyValue(p);
		return {x: r.x, y: r.y, width: r.width, height: r.height,
			styles: styles, text: (el.textContent || "").trim()};
	})()`, selector, jsStringArray(props))

	var snap *elementSnapshot
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(script, &snap)); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", selector, err)
	}
	if snap == nil {
		return nil, fmt.Errorf("no element matches %s", selector)
	}

	return &staticElement{snap: *snap}, nil
}

// ImageRef returns a reference to the image element matching the selector.
func (s *Source) ImageRef(selector string) ports.ImageRef {
	return &domImage{source: s, selector: selector}
}

// staticElement is an immutable snapshot implementing ports.Element.
type staticElement struct {
	snap elementSnapshot
}

func (e *staticElement) Rect() ports.Rect {
	return ports.Rect{X: e.snap.X, Y: e.snap.Y, Width: e.snap.Width, Height: e.snap.Height}
}

func (e *staticElement) Style(prop string) string {
	return e.snap.Styles[prop]
}

func (e *staticElement) Text() string {
	return e.snap.Text
}

// domImage fetches image pixels out of the page through a scratch canvas.
type domImage struct {
	source   *Source
	selector string
}

func (d *domImage) Fetch(ctx context.Context) ([]byte, error) {
	script := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el || !el.naturalWidth) return "";
		const c = document.createElement("canvas");
		c.width = el.naturalWidth;
		c.height = el.naturalHeight;
		c.getContext("2d").drawImage(el, 0, 0);
		return c.toDataURL("image/png").split(",")[1];
	})()`, d.selector)

	var encoded string
	if err := chromedp.Run(d.source.ctx, chromedp.Evaluate(script, &encoded)); err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", d.selector, err)
	}
	if encoded == "" {
		return nil, fmt.Errorf("image %s not found or not loaded", d.selector)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}
	return data, nil
}

// jsStringArray renders a Go string slice as a JS array literal.
func jsStringArray(items []string) string {
	out := "["
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", item)
	}
	return out + "]"
}

var (
	_ ports.Element  = (*staticElement)(nil)
	_ ports.ImageRef = (*domImage)(nil)
)
