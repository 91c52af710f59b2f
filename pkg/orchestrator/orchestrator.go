// Package orchestrator coordinates the export pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"

	"github.com/ideamans/go-l10n"
	"github.com/user/storeshot/pkg/pipeline"
	"github.com/user/storeshot/pkg/ports"
)

// Orchestrator sequences one export call through the pipeline stages:
// geometry resolution, background painting and drawing, device frame
// compositing, and encoding. It retains no state between calls; every
// call is independent and produces either a complete encoded result or a
// typed error, never partial output.
type Orchestrator struct {
	geometryStage pipeline.Stage[pipeline.GeometryInput, pipeline.GeometryResult]
	composeStage  pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	frameStage    pipeline.Stage[pipeline.FrameInput, pipeline.FrameResult]
	encodeStage   pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	renderer      ports.Renderer
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	geometryStage pipeline.Stage[pipeline.GeometryInput, pipeline.GeometryResult],
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	frameStage pipeline.Stage[pipeline.FrameInput, pipeline.FrameResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	renderer ports.Renderer,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		geometryStage: geometryStage,
		composeStage:  composeStage,
		frameStage:    frameStage,
		encodeStage:   encodeStage,
		renderer:      renderer,
		sink:          sink,
		logger:        logger,
	}
}

// ExportResult contains the outcome of a single export call.
type ExportResult struct {
	Data     []byte
	Format   pipeline.OutputFormat
	FileSize int64

	// Final surface dimensions: the target size, enlarged by the frame
	// padding when a device frame was applied.
	Width  int
	Height int
}

// ExportData decodes a source image from raw bytes, then exports it.
func (o *Orchestrator) ExportData(ctx context.Context, data []byte, params pipeline.ExportParameters) (ExportResult, error) {
	img, err := o.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode source image: %s", err))
		return ExportResult{}, fmt.Errorf("decode source: %w", err)
	}
	return o.Export(ctx, img, params)
}

// Export runs the full pipeline for one already-decoded source image.
func (o *Orchestrator) Export(ctx context.Context, source image.Image, params pipeline.ExportParameters) (ExportResult, error) {
	if source == nil {
		return ExportResult{}, fmt.Errorf("decode source: %w", pipeline.ErrDecodeFailed)
	}
	if err := params.Validate(); err != nil {
		return ExportResult{}, fmt.Errorf("invalid parameters: %w", err)
	}

	bounds := source.Bounds()

	// 1. Resolve geometry
	o.logger.Debug(l10n.T("Resolving geometry"))
	geometry, err := o.geometryStage.Execute(ctx, pipeline.GeometryInput{
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
		TargetWidth:  params.TargetWidth,
		TargetHeight: params.TargetHeight,
		Mode:         params.Mode,
		ZoomPercent:  params.ZoomPercent,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to resolve geometry: %s", err))
		return ExportResult{}, fmt.Errorf("geometry stage: %w", err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(geometry, "", "  "); err == nil {
			o.sink.SaveGeometryJSON(data)
		}
	}

	// 2. Paint background and draw
	composed, err := o.composeStage.Execute(ctx, o.buildComposeInput(source, geometry, params))
	if err != nil {
		o.logger.Error(l10n.F("Failed to compose surface: %s", err))
		return ExportResult{}, fmt.Errorf("compose stage: %w", err)
	}

	if o.sink.Enabled() {
		o.sink.SaveComposedSurface(composed.Image)
	}

	// 3. Composite device frame
	framed, err := o.frameStage.Execute(ctx, pipeline.FrameInput{
		Image:        composed.Image,
		Frame:        params.Frame,
		TargetWidth:  params.TargetWidth,
		TargetHeight: params.TargetHeight,
		BezelColor:   params.BezelColor,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite frame: %s", err))
		return ExportResult{}, fmt.Errorf("frame stage: %w", err)
	}

	if o.sink.Enabled() && params.Frame != pipeline.FrameNone {
		o.sink.SaveFramedSurface(framed.Image)
	}

	// 4. Encode
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Image:   framed.Image,
		Format:  params.Format,
		Quality: params.Quality,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode image: %s", err))
		return ExportResult{}, fmt.Errorf("encode stage: %w", err)
	}

	finalBounds := framed.Image.Bounds()
	o.logger.Info(l10n.F("Exported %dx%d %s image: %d bytes", finalBounds.Dx(), finalBounds.Dy(), encoded.Format, encoded.FileSize))

	return ExportResult{
		Data:     encoded.Data,
		Format:   encoded.Format,
		FileSize: encoded.FileSize,
		Width:    finalBounds.Dx(),
		Height:   finalBounds.Dy(),
	}, nil
}

func (o *Orchestrator) buildComposeInput(source image.Image, geometry pipeline.GeometryResult, params pipeline.ExportParameters) pipeline.ComposeInput {
	return pipeline.ComposeInput{
		Source:          source,
		Geometry:        geometry,
		TargetWidth:     params.TargetWidth,
		TargetHeight:    params.TargetHeight,
		Background:      params.Background,
		BackgroundColor: params.BackgroundColor,
		GradientTop:     params.GradientTop,
		GradientBottom:  params.GradientBottom,
	}
}
