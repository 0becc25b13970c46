// Package main provides the CLI entry point for bannerforge.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/bannerforge/pkg/adapters/domsource"
	"github.com/user/bannerforge/pkg/adapters/fileemitter"
	"github.com/user/bannerforge/pkg/adapters/filesink"
	"github.com/user/bannerforge/pkg/adapters/ggrenderer"
	"github.com/user/bannerforge/pkg/adapters/logger"
	"github.com/user/bannerforge/pkg/adapters/noisegen"
	"github.com/user/bannerforge/pkg/adapters/nullsink"
	"github.com/user/bannerforge/pkg/adapters/osfilesystem"
	"github.com/user/bannerforge/pkg/adapters/yamlscene"
	"github.com/user/bannerforge/pkg/orchestrator"
	"github.com/user/bannerforge/pkg/ports"
	"github.com/user/bannerforge/pkg/stages/background"
	"github.com/user/bannerforge/pkg/stages/card"
	"github.com/user/bannerforge/pkg/stages/encode"
	"github.com/user/bannerforge/pkg/stages/geometry"
	"github.com/user/bannerforge/pkg/stages/style"
	"github.com/user/bannerforge/pkg/stages/text"
)

var version = "dev"

// cardStyleProps are the computed style properties snapshotted from the
// card element of a live page.
var cardStyleProps = []string{"border-radius", "background"}

// textStyleProps are the computed style properties snapshotted from the
// text element of a live page.
var textStyleProps = []string{"font-size", "font-family", "font-weight", "color"}

func main() {
	app := &cli.App{
		Name:    "bannerforge",
		Usage:   l10n.T("Export glass-card banners as raster images"),
		Version: version,
		Commands: []*cli.Command{
			exportCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: l10n.T("Render a banner and save it as a PNG file"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "scene",
				Usage: l10n.T("YAML scene file describing the banner"),
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: l10n.T("Page URL to resolve banner elements from"),
			},
			&cli.StringFlag{
				Name:  "preview-selector",
				Value: ".banner-preview",
				Usage: l10n.T("CSS selector of the on-screen preview container"),
			},
			&cli.StringFlag{
				Name:  "image-selector",
				Value: ".banner-preview img",
				Usage: l10n.T("CSS selector of the background image element"),
			},
			&cli.StringFlag{
				Name:  "card-selector",
				Value: ".banner-card",
				Usage: l10n.T("CSS selector of the glass card element"),
			},
			&cli.StringFlag{
				Name:  "text-selector",
				Value: ".banner-card .label",
				Usage: l10n.T("CSS selector of the card label element"),
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"W"},
				Usage:   l10n.T("Fixed output width in pixels (0 = derive from image)"),
			},
			&cli.IntFlag{
				Name:    "height",
				Aliases: []string{"H"},
				Usage:   l10n.T("Fixed output height in pixels (0 = derive from image)"),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   l10n.T("Output directory for the exported banner"),
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: l10n.T("TrueType font file for text rendering"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Save intermediate images for inspection"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Value: "./debug",
				Usage: l10n.T("Directory for debug output"),
			},
			&cli.StringFlag{
				Name:  "chrome-path",
				Usage: l10n.T("Path to Chrome executable (system default when empty)"),
			},
			&cli.BoolFlag{
				Name:  "no-headless",
				Usage: l10n.T("Run browser in non-headless mode"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 60 * time.Second,
				Usage: l10n.T("Overall export timeout"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: runExport,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("bannerforge version %s", version))
			return nil
		},
	}
}

func runExport(c *cli.Context) error {
	if c.String("scene") == "" && c.String("url") == "" {
		return cli.Exit(l10n.T("either --scene or --url is required"), 2)
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if c.Bool("debug") {
		if err := fs.MkdirAll(c.String("debug-dir")); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(c.String("debug-dir"), fs, renderer)
	} else {
		sink = nullsink.New()
	}

	req, cleanup, err := buildRequest(ctx, c, fs, log)
	if err != nil {
		return err
	}
	defer cleanup()

	orch := orchestrator.New(
		geometry.NewStage(),
		style.NewStage(log),
		background.NewStage(renderer, log),
		card.NewStage(renderer, noisegen.New(), sink, log),
		text.NewStage(renderer, log),
		encode.NewStage(renderer, log),
		renderer,
		fileemitter.New(c.String("out"), fs),
		sink,
		log,
	)

	result, err := orch.Run(ctx, req)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Saved %s (%dx%d, scale %.2f)",
		result.Filename, result.Width, result.Height, result.Scale))
	return nil
}

// buildRequest assembles an ExportRequest from either a scene file or a
// live page. The returned cleanup shuts down the browser once the image
// has been consumed; it is a no-op for scene files.
func buildRequest(ctx context.Context, c *cli.Context, fs ports.FileSystem, log ports.Logger) (orchestrator.ExportRequest, func(), error) {
	noop := func() {}

	if scenePath := c.String("scene"); scenePath != "" {
		scene, err := yamlscene.Load(scenePath, fs)
		if err != nil {
			return orchestrator.ExportRequest{}, noop, err
		}
		req := orchestrator.ExportRequest{
			Preview:     scene.Preview(),
			Image:       scene.Image(),
			Card:        scene.Card(),
			Text:        scene.Text(),
			FixedWidth:  scene.FixedWidth(),
			FixedHeight: scene.FixedHeight(),
			FontPath:    scene.FontPath(),
		}
		// CLI dimensions override the scene file.
		if w := c.Int("width"); w > 0 {
			req.FixedWidth = w
		}
		if h := c.Int("height"); h > 0 {
			req.FixedHeight = h
		}
		if font := c.String("font"); font != "" {
			req.FontPath = font
		}
		return req, noop, nil
	}

	log.Info(l10n.F("Resolving banner elements from %s", c.String("url")))

	source := domsource.New()
	if err := source.Launch(ctx, domsource.Options{
		Headless:   !c.Bool("no-headless"),
		ChromePath: c.String("chrome-path"),
	}); err != nil {
		return orchestrator.ExportRequest{}, noop, err
	}
	if err := source.Navigate(ctx, c.String("url")); err != nil {
		source.Close()
		return orchestrator.ExportRequest{}, noop, err
	}

	preview, err := source.Resolve(c.String("preview-selector"), nil)
	if err != nil {
		source.Close()
		return orchestrator.ExportRequest{}, noop, err
	}
	cardEl, err := source.Resolve(c.String("card-selector"), cardStyleProps)
	if err != nil {
		source.Close()
		return orchestrator.ExportRequest{}, noop, err
	}
	textEl, err := source.Resolve(c.String("text-selector"), textStyleProps)
	if err != nil {
		source.Close()
		return orchestrator.ExportRequest{}, noop, err
	}

	return orchestrator.ExportRequest{
		Preview:     preview.Rect(),
		Image:       source.ImageRef(c.String("image-selector")),
		Card:        cardEl,
		Text:        textEl,
		FixedWidth:  c.Int("width"),
		FixedHeight: c.Int("height"),
		FontPath:    c.String("font"),
	}, source.Close, nil
}
