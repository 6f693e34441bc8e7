// Package render validates chart requests, draws them with go-chart and
// writes the image to disk. Every outcome is reported as a string so it can
// be handed straight back to a remote agent.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DiagnosticSink receives server-side reports about render failures.
// *slog.Logger satisfies it.
type DiagnosticSink interface {
	Error(msg string, args ...any)
}

// Failure classifies why a render call did not produce a file.
type Failure int

const (
	FailureNone Failure = iota
	FailureInputShape
	FailureInvalidValue
	FailureRender
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureInputShape:
		return "input shape"
	case FailureInvalidValue:
		return "invalid value"
	case FailureRender:
		return "render"
	}
	return "unknown"
}

// Result is the outcome of one render call. Message is the caller-facing
// text; failure messages always start with "Error:".
type Result struct {
	Message string
	Failure Failure
	Err     error
}

// OK reports whether a file was written.
func (r Result) OK() bool { return r.Failure == FailureNone }

func (r Result) String() string { return r.Message }

// Options configures a Renderer.
type Options struct {
	// OutputDir, when set, is joined onto relative filenames.
	OutputDir string
	// Sink receives render failure diagnostics. Defaults to slog.Default().
	Sink DiagnosticSink
}

// Renderer draws charts. It holds no per-call state and is safe for
// concurrent use.
type Renderer struct {
	outputDir string
	sink      DiagnosticSink
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	sink := opts.Sink
	if sink == nil {
		sink = slog.Default()
	}
	return &Renderer{outputDir: opts.OutputDir, sink: sink}
}

// RenderBar draws one bar per label/value pair.
func (r *Renderer) RenderBar(labels []string, values []float64, title, filename string) string {
	return r.Render(Bar, ChartRequest{Labels: labels, Values: values, Title: title, Filename: filename}).Message
}

// RenderLine draws a single line with point markers across the pairs.
func (r *Renderer) RenderLine(labels []string, values []float64, title, filename string) string {
	return r.Render(Line, ChartRequest{Labels: labels, Values: values, Title: title, Filename: filename}).Message
}

// RenderPie draws one slice per label annotated with its percentage.
func (r *Renderer) RenderPie(labels []string, sizes []float64, title, filename string) string {
	return r.Render(Pie, ChartRequest{Labels: labels, Values: sizes, Title: title, Filename: filename}).Message
}

// Render validates req against kind, draws it and saves it.
func (r *Renderer) Render(kind Kind, req ChartRequest) Result {
	req = req.withDefaults(kind)

	if err := kind.Validate(req); err != nil {
		failure := FailureInputShape
		if errors.Is(err, ErrNegativeSize) || errors.Is(err, ErrNonFinite) {
			failure = FailureInvalidValue
		}
		return Result{Message: "Error: " + err.Error(), Failure: failure, Err: err}
	}

	path := r.resolve(req.Filename)
	if err := r.save(kind, req, path); err != nil {
		rerr := &RenderError{Kind: kind.Name, Filename: path, Err: err}
		r.sink.Error("chart render failed", "kind", kind.Name, "filename", path, "error", err)
		return Result{Message: "Error: " + rerr.Error(), Failure: FailureRender, Err: rerr}
	}

	return Result{Message: fmt.Sprintf("Chart '%s' saved to %s", req.Title, path)}
}

func (r *Renderer) resolve(filename string) string {
	if r.outputDir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(r.outputDir, filename)
}

// save renders into memory first so a failed render leaves no file behind.
func (r *Renderer) save(kind Kind, req ChartRequest, path string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("renderer panic: %v", p)
		}
	}()

	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	fig, err := buildFigure(kind, req)
	if err != nil {
		return err
	}
	data, err := enc(fig)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
