// Package orchestrator coordinates all export pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// ExportRequest describes one banner export: the on-screen preview
// frame, the source image, the card and text elements, and the optional
// fixed output dimensions.
type ExportRequest struct {
	Preview ports.Rect
	Image   ports.ImageRef
	Card    ports.Element
	Text    ports.Element

	FixedWidth  int // 0 = derive from preview and image
	FixedHeight int // 0 = derive from preview and image

	FontPath string
}

// Orchestrator coordinates the execution of all pipeline stages.
// Each Run owns its own canvases and buffers; concurrent Runs never
// share mutable state.
type Orchestrator struct {
	geometryStage   pipeline.Stage[pipeline.GeometryInput, pipeline.ExportTarget]
	styleStage      pipeline.Stage[pipeline.StyleInput, pipeline.StyleResult]
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult]
	cardStage       pipeline.Stage[pipeline.CardInput, pipeline.CardResult]
	textStage       pipeline.Stage[pipeline.TextInput, pipeline.TextResult]
	encodeStage     pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	renderer        ports.Renderer
	emitter         ports.Emitter
	sink            ports.DebugSink
	logger          ports.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a new Orchestrator.
func New(
	geometryStage pipeline.Stage[pipeline.GeometryInput, pipeline.ExportTarget],
	styleStage pipeline.Stage[pipeline.StyleInput, pipeline.StyleResult],
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult],
	cardStage pipeline.Stage[pipeline.CardInput, pipeline.CardResult],
	textStage pipeline.Stage[pipeline.TextInput, pipeline.TextResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	renderer ports.Renderer,
	emitter ports.Emitter,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		geometryStage:   geometryStage,
		styleStage:      styleStage,
		backgroundStage: backgroundStage,
		cardStage:       cardStage,
		textStage:       textStage,
		encodeStage:     encodeStage,
		renderer:        renderer,
		emitter:         emitter,
		sink:            sink,
		logger:          logger,
		now:             time.Now,
	}
}

// Run executes one export. Stages run strictly sequentially; the first
// failure aborts the remaining stages and no file is emitted.
func (o *Orchestrator) Run(ctx context.Context, req ExportRequest) (RunResult, error) {
	o.logger.Info(l10n.T("Starting banner export"))

	// Load and decode the source image before any geometry work; its
	// natural size drives target resolution. This is the only
	// asynchronous boundary of the export.
	data, err := req.Image.Fetch(ctx)
	if err != nil {
		loadErr := &pipeline.AssetLoadError{Err: err}
		o.logger.Error(l10n.F("Failed to load source image: %s", err))
		return RunResult{}, loadErr
	}
	source, err := o.renderer.DecodeImage(data)
	if err != nil {
		loadErr := &pipeline.AssetLoadError{Err: err}
		o.logger.Error(l10n.F("Failed to decode source image: %s", err))
		return RunResult{}, loadErr
	}
	bounds := source.Bounds()

	// 1. Resolve target dimensions and source crop.
	target, err := pipeline.Run(ctx, o.geometryStage, pipeline.GeometryInput{
		Preview:       req.Preview,
		NaturalWidth:  bounds.Dx(),
		NaturalHeight: bounds.Dy(),
		FixedWidth:    req.FixedWidth,
		FixedHeight:   req.FixedHeight,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to resolve target geometry: %s", err))
		return RunResult{}, fmt.Errorf("geometry stage: %w", err)
	}
	o.logger.Info(l10n.F("Export target resolved: %dx%d", target.Width, target.Height))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(target, "", "  "); err == nil {
			o.sink.SaveTargetJSON(data)
		}
	}

	// 2. Map on-screen styles into raster space.
	styles, err := pipeline.Run(ctx, o.styleStage, pipeline.StyleInput{
		Preview:  req.Preview,
		Target:   target,
		Card:     req.Card,
		Text:     req.Text,
		FontPath: req.FontPath,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to map styles: %s", err))
		return RunResult{}, fmt.Errorf("style stage: %w", err)
	}

	// 3. Composite the background.
	bg, err := pipeline.Run(ctx, o.backgroundStage, pipeline.BackgroundInput{
		Source: source,
		Target: target,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite background: %s", err))
		return RunResult{}, fmt.Errorf("background stage: %w", err)
	}

	// 4. Render the glass card.
	cardResult, err := pipeline.Run(ctx, o.cardStage, pipeline.CardInput{
		Canvas: bg.Canvas,
		Card:   styles.Card,
		Scale:  styles.Scale,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to render card: %s", err))
		return RunResult{}, fmt.Errorf("card stage: %w", err)
	}

	// 5. Render the label.
	textResult, err := pipeline.Run(ctx, o.textStage, pipeline.TextInput{
		Canvas: cardResult.Canvas,
		Card:   styles.Card,
		Text:   styles.Text,
		Scale:  styles.Scale,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to render text: %s", err))
		return RunResult{}, fmt.Errorf("text stage: %w", err)
	}

	final := textResult.Canvas.ToImage()
	if o.sink.Enabled() {
		o.sink.SaveFinal(final)
	}

	// 6. Encode and emit.
	encoded, err := pipeline.Run(ctx, o.encodeStage, pipeline.EncodeInput{
		Image:     final,
		Timestamp: o.now(),
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode banner: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	if err := o.emitter.Emit(encoded.Data, encoded.Filename); err != nil {
		o.logger.Error(l10n.F("Failed to save banner: %s", err))
		return RunResult{}, fmt.Errorf("emit banner: %w", err)
	}

	o.logger.Info(l10n.F("Banner exported: %s (%d bytes)", encoded.Filename, len(encoded.Data)))

	return RunResult{
		Width:    target.Width,
		Height:   target.Height,
		Scale:    styles.Scale,
		Filename: encoded.Filename,
		FileSize: int64(len(encoded.Data)),
	}, nil
}

// RunResult summarizes one completed export.
type RunResult struct {
	Width    int
	Height   int
	Scale    float64
	Filename string
	FileSize int64
}
