// Package main provides the CLI entry point for storeshot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/storeshot/pkg/adapters/dirpackager"
	"github.com/user/storeshot/pkg/adapters/filesink"
	"github.com/user/storeshot/pkg/adapters/ggrenderer"
	"github.com/user/storeshot/pkg/adapters/logger"
	"github.com/user/storeshot/pkg/adapters/nullsink"
	"github.com/user/storeshot/pkg/adapters/osfilesystem"
	"github.com/user/storeshot/pkg/adapters/zippackager"
	"github.com/user/storeshot/pkg/config"
	"github.com/user/storeshot/pkg/orchestrator"
	"github.com/user/storeshot/pkg/pipeline"
	"github.com/user/storeshot/pkg/ports"
	"github.com/user/storeshot/pkg/stages/compose"
	"github.com/user/storeshot/pkg/stages/deviceframe"
	"github.com/user/storeshot/pkg/stages/encode"
	"github.com/user/storeshot/pkg/stages/geometry"
	"github.com/user/storeshot/pkg/storeshot"
	"github.com/user/storeshot/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Export  ExportCmd  `cmd:"" help:"Export a single screenshot for a store listing slot."`
	Batch   BatchCmd   `cmd:"" help:"Export every image in a directory."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ExportOptions holds the export flags shared by the export and batch
// commands.
type ExportOptions struct {
	// Preset
	Preset     string `short:"p" default:"iphone-6.9" enum:"iphone-6.9,ipad-13,android-phone" help:"Store slot preset."`
	ConfigPath string `name:"config" help:"YAML configuration file (overrides the preset)."`

	// Target dimensions (override preset)
	Width  *int `short:"W" help:"Target surface width in pixels."`
	Height *int `short:"H" help:"Target surface height in pixels."`

	// Mapping options
	Mode *string `help:"Fit mode (fill crops, fit letterboxes)."`
	Zoom *int    `help:"Zoom percentage (100 = no zoom)."`

	// Encoding options
	Format  *string `short:"f" help:"Output format (png, jpeg, webp)."`
	Quality *int    `short:"q" help:"Lossy quality (ignored for png)."`

	// Background options (fit mode)
	Background      *string `help:"Letterbox background style (transparent, solid, gradient)."`
	BackgroundColor *string `help:"Solid background color (hex, e.g., #000000)."`
	GradientTop     *string `help:"Gradient top color (hex)."`
	GradientBottom  *string `help:"Gradient bottom color (hex)."`

	// Frame options
	Frame      *string `help:"Device frame (none, iphone, ipad, android)."`
	BezelColor *string `help:"Bezel color (hex, default: black)."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ExportCmd defines the export subcommand.
type ExportCmd struct {
	Input  string `arg:"" help:"Source image file (PNG, JPEG or WebP)."`
	Output string `short:"o" required:"" help:"Output file path."`

	ExportOptions `embed:""`
}

// BatchCmd defines the batch subcommand.
type BatchCmd struct {
	InputDir  string `arg:"" help:"Directory containing source images."`
	OutputDir string `short:"o" default:"./screenshots" help:"Output directory (or ZIP path with --zip)."`

	Zip      bool   `help:"Bundle results into a ZIP archive."`
	FailFast bool   `help:"Stop at the first failed image."`
	Summary  string `help:"Output batch summary to file (Markdown format)."`

	ExportOptions `embed:""`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("storeshot"),
		kong.Description("Prepare app screenshots for store listing slots."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// newLogger creates the CLI logger from the logging flags.
func (o *ExportOptions) newLogger() ports.Logger {
	if o.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(o.LogLevel))
}

// newSink creates the debug sink from the debug flags.
func (o *ExportOptions) newSink(fs ports.FileSystem, renderer ports.Renderer) (ports.DebugSink, error) {
	if !o.Debug {
		return nullsink.New(), nil
	}
	if err := fs.MkdirAll(o.DebugDir); err != nil {
		return nil, fmt.Errorf("create debug directory: %w", err)
	}
	return filesink.New(o.DebugDir, fs, renderer), nil
}

// buildParams resolves the export parameters from the preset or config
// file, then applies CLI overrides.
func (o *ExportOptions) buildParams() (pipeline.ExportParameters, error) {
	if o.ConfigPath != "" {
		cfg, err := config.LoadFromFile(o.ConfigPath)
		if err != nil {
			return pipeline.ExportParameters{}, fmt.Errorf("load config: %w", err)
		}
		o.applyFileOverrides(&cfg)
		params := cfg.ToExportParameters()
		if err := params.Validate(); err != nil {
			return pipeline.ExportParameters{}, err
		}
		return params, nil
	}

	params := o.buildConfig().ToExportParameters()
	if err := params.Validate(); err != nil {
		return pipeline.ExportParameters{}, err
	}
	return params, nil
}

// buildConfig creates a Config from the preset and CLI overrides.
func (o *ExportOptions) buildConfig() storeshot.Config {
	builder := storeshot.NewConfigBuilderFor(storeshot.StorePreset(o.Preset))

	if o.Width != nil || o.Height != nil {
		cfg := builder.Build()
		width, height := cfg.TargetWidth, cfg.TargetHeight
		if o.Width != nil {
			width = *o.Width
		}
		if o.Height != nil {
			height = *o.Height
		}
		builder.WithTargetSize(width, height)
	}
	if o.Mode != nil {
		builder.WithMode(pipeline.FitMode(*o.Mode))
	}
	if o.Zoom != nil {
		builder.WithZoom(*o.Zoom)
	}
	if o.Format != nil {
		builder.WithFormat(pipeline.OutputFormat(*o.Format))
	}
	if o.Quality != nil {
		builder.WithQuality(*o.Quality)
	}
	if o.Background != nil {
		builder.WithBackground(pipeline.BackgroundStyle(*o.Background))
	}
	if o.BackgroundColor != nil {
		builder.WithBackgroundColor(config.ParseColor(*o.BackgroundColor))
	}
	if o.GradientTop != nil || o.GradientBottom != nil {
		cfg := builder.Build()
		top, bottom := cfg.GradientTop, cfg.GradientBottom
		if o.GradientTop != nil {
			top = config.ParseColor(*o.GradientTop)
		}
		if o.GradientBottom != nil {
			bottom = config.ParseColor(*o.GradientBottom)
		}
		builder.WithGradient(top, bottom)
	}
	if o.Frame != nil {
		builder.WithFrame(pipeline.DeviceFrame(*o.Frame))
	}
	if o.BezelColor != nil {
		builder.WithBezelColor(config.ParseColor(*o.BezelColor))
	}

	return builder.Build()
}

// applyFileOverrides applies CLI flag overrides on top of a file config.
func (o *ExportOptions) applyFileOverrides(cfg *config.Config) {
	if o.Width != nil {
		cfg.TargetWidth = *o.Width
	}
	if o.Height != nil {
		cfg.TargetHeight = *o.Height
	}
	if o.Mode != nil {
		cfg.Mode = *o.Mode
	}
	if o.Zoom != nil {
		cfg.ZoomPercent = *o.Zoom
	}
	if o.Format != nil {
		cfg.Format = *o.Format
	}
	if o.Quality != nil {
		cfg.Quality = *o.Quality
	}
	if o.Background != nil {
		cfg.Background = *o.Background
	}
	if o.BackgroundColor != nil {
		cfg.BackgroundColor = *o.BackgroundColor
	}
	if o.GradientTop != nil {
		cfg.GradientTop = *o.GradientTop
	}
	if o.GradientBottom != nil {
		cfg.GradientBottom = *o.GradientBottom
	}
	if o.Frame != nil {
		cfg.Frame = *o.Frame
	}
	if o.BezelColor != nil {
		cfg.BezelColor = *o.BezelColor
	}
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}

// newOrchestrator wires the pipeline stages with the given adapters.
func newOrchestrator(renderer ports.Renderer, sink ports.DebugSink, log ports.Logger) *orchestrator.Orchestrator {
	return orchestrator.New(
		geometry.NewStage(),
		compose.NewStage(renderer, log),
		deviceframe.NewStage(renderer, log),
		encode.NewStage(renderer, log),
		renderer,
		sink,
		log,
	)
}

// Run executes the export command.
func (cmd *ExportCmd) Run() error {
	log := cmd.newLogger()

	params, err := cmd.buildParams()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	sink, err := cmd.newSink(fs, renderer)
	if err != nil {
		return err
	}

	orch := newOrchestrator(renderer, sink, log)

	data, err := fs.ReadFile(cmd.Input)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	log.Info(l10n.F("Exporting %s (%s preset)...", cmd.Input, cmd.Preset))

	result, err := orch.ExportData(ctx, data, params)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cmd.Output); dir != "" && dir != "." {
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := fs.WriteFile(cmd.Output, result.Data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info(l10n.F("Output saved to %s", cmd.Output))
	return nil
}

// imageExtensions lists the source file extensions batch picks up.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Run executes the batch command.
func (cmd *BatchCmd) Run() error {
	log := cmd.newLogger()

	params, err := cmd.buildParams()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	sink, err := cmd.newSink(fs, renderer)
	if err != nil {
		return err
	}

	orch := newOrchestrator(renderer, sink, log)

	files, err := fs.ListFiles(cmd.InputDir)
	if err != nil {
		return fmt.Errorf("list input directory: %w", err)
	}

	sources := make([]string, 0, len(files))
	for _, f := range files {
		if imageExtensions[strings.ToLower(filepath.Ext(f))] {
			sources = append(sources, f)
		}
	}
	if len(sources) == 0 {
		return fmt.Errorf("no source images found in %s", cmd.InputDir)
	}

	packager, err := cmd.newPackager(fs)
	if err != nil {
		return err
	}

	builder := summarizer.NewBuilder().WithSettings(summarizer.Settings{
		Preset:       cmd.Preset,
		TargetWidth:  params.TargetWidth,
		TargetHeight: params.TargetHeight,
		Mode:         string(params.Mode),
		Format:       string(params.Format),
		Quality:      params.Quality,
		Frame:        string(params.Frame),
		ZoomPercent:  params.ZoomPercent,
	})

	log.Info(l10n.F("Exporting %d images from %s...", len(sources), cmd.InputDir))

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			packager.Close()
			return err
		}

		item, err := cmd.exportOne(ctx, orch, fs, packager, source, params)
		builder.AddItem(item)
		if err != nil {
			log.Error(l10n.F("Failed to export %s: %s", source, err))
			if cmd.FailFast {
				packager.Close()
				return err
			}
			continue
		}
		log.Info(l10n.F("Exported %s to %s", source, item.Output))
	}

	if err := packager.Close(); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}

	summary := builder.Build()

	if cmd.Summary != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
		if err := writer.Write(cmd.Summary, summary); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cmd.Summary))
		}
	}

	if summary.Totals.Failed > 0 {
		log.Warn(l10n.F("%d of %d images failed", summary.Totals.Failed, summary.Totals.Processed))
	} else {
		log.Info(l10n.F("All %d images exported", summary.Totals.Processed))
	}
	return nil
}

// exportOne exports a single source file and hands the result to the
// packager. The returned Item records the outcome either way.
func (cmd *BatchCmd) exportOne(ctx context.Context, orch *orchestrator.Orchestrator, fs ports.FileSystem, packager ports.Packager, source string, params pipeline.ExportParameters) (summarizer.Item, error) {
	data, err := fs.ReadFile(source)
	if err != nil {
		return summarizer.Item{Source: source, Error: err.Error()}, err
	}

	result, err := orch.ExportData(ctx, data, params)
	if err != nil {
		return summarizer.Item{Source: source, Error: err.Error()}, err
	}

	name := storeshot.OutputFileName(source, params)
	if err := packager.Add(name, result.Data); err != nil {
		return summarizer.Item{Source: source, Error: err.Error()}, err
	}

	return summarizer.Item{
		Source:   source,
		Output:   name,
		Width:    result.Width,
		Height:   result.Height,
		FileSize: result.FileSize,
	}, nil
}

// newPackager creates the output packager: a ZIP archive with --zip,
// individual files in the output directory otherwise.
func (cmd *BatchCmd) newPackager(fs ports.FileSystem) (ports.Packager, error) {
	if cmd.Zip {
		path := cmd.OutputDir
		if !strings.HasSuffix(strings.ToLower(path), ".zip") {
			path += ".zip"
		}
		return zippackager.New(path)
	}

	if err := fs.MkdirAll(cmd.OutputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return dirpackager.New(cmd.OutputDir, fs), nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("storeshot version %s", version))
	return nil
}
