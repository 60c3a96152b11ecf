package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/artpar/cmdeploy/internal/core/pipeline"
	"github.com/artpar/cmdeploy/internal/core/render"
	"github.com/artpar/cmdeploy/internal/shell/source"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitInputError  = 2
	ExitOutputError = 3
)

// =============================================================================
// Processor
// =============================================================================

// Processor runs one deployment document through the configured pipeline.
type Processor struct {
	cfg    *Config
	logger *slog.Logger
}

// NewProcessor creates a processor for cfg.
func NewProcessor(cfg *Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{cfg: cfg, logger: logger}
}

// Process acquires the document, transforms it and writes the rendered result
// to w. Options are validated before any input is read.
func (p *Processor) Process(ctx context.Context, w io.Writer) error {
	pl, err := pipeline.Build(p.cfg.Transform.PipelineOptions())
	if err != nil {
		return &RunError{Op: "build pipeline", Err: err, ExitCode: ExitConfigError}
	}

	format, err := render.ParseFormat(p.cfg.Output.Format)
	if err != nil {
		return &RunError{Op: "select output format", Err: err, ExitCode: ExitConfigError}
	}

	p.logger.Debug("pipeline built",
		"stages", pl.Stages(),
		"format", format,
		"pretty", p.cfg.Output.Pretty,
	)

	doc, err := source.Load(ctx, p.cfg.Input.SourceOptions(), p.logger)
	if err != nil {
		return &RunError{Op: "load input", Err: err, ExitCode: ExitInputError}
	}
	p.logger.Info("deployment loaded", "source", p.sourceName())

	out := pl.Run(doc)

	data, err := render.Render(out, render.Options{Format: format, Pretty: p.cfg.Output.Pretty})
	if err != nil {
		return &RunError{Op: "render output", Err: err, ExitCode: ExitOutputError}
	}
	if _, err := w.Write(data); err != nil {
		return &RunError{Op: "write output", Err: err, ExitCode: ExitOutputError}
	}

	p.logger.Info("deployment written", "format", format, "bytes", len(data))
	return nil
}

func (p *Processor) sourceName() string {
	if p.cfg.Input.File != "" {
		return p.cfg.Input.File
	}
	return p.cfg.Input.URL
}

// =============================================================================
// Run Error
// =============================================================================

// RunError represents a failure that ends the run with a specific exit code.
type RunError struct {
	Op       string
	Err      error
	ExitCode int
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
