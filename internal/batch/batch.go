// Package batch runs the watermark pipeline over every target named by the
// settings of one invocation.
package batch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/menta2k/watermarker/internal/config"
	"github.com/menta2k/watermarker/internal/utils"
	"github.com/menta2k/watermarker/pkg/processing"
)

// Stage names the pipeline step a processing error happened in
type Stage string

const (
	StageDecode Stage = "decode"
	StageResize Stage = "resize"
	StageEncode Stage = "encode"
)

// Error reports the first failed target of a run
type Error struct {
	Stage  Stage
	Input  string
	Output string
	Err    error
}

func (e *Error) Error() string {
	if e.Stage == StageEncode {
		return fmt.Sprintf("%s %s => %s: %v", e.Stage, e.Input, e.Output, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Input, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Report counts what a run did
type Report struct {
	Processed int
	Skipped   int
}

// Processor watermarks targets sequentially with one shared logo
type Processor struct {
	settings  *config.Settings
	processor *processing.Processor
	log       *zap.Logger
}

// New creates a batch processor. A nil logger discards all output.
func New(settings *config.Settings, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		settings:  settings,
		processor: processing.NewProcessor(),
		log:       log,
	}
}

// Targets expands the inputs into the ordered list of files to process.
// Files are taken as given; directories are walked for JPEG files.
// Anything else is ignored.
func (p *Processor) Targets() ([]string, error) {
	var targets []string

	for _, input := range p.settings.Inputs() {
		switch {
		case utils.FileExists(input):
			targets = append(targets, input)
		case utils.DirExists(input):
			files, err := utils.ListJPEGFiles(input)
			if err != nil {
				return nil, fmt.Errorf("list %s: %w", input, err)
			}
			p.log.Debug("expanded directory", zap.String("input", input), zap.Int("files", len(files)))
			targets = append(targets, files...)
		default:
			p.log.Debug("ignoring input", zap.String("input", input))
		}
	}

	return targets, nil
}

// Run processes every target, stopping at the first failure. Outputs
// written before the failure are left in place.
func (p *Processor) Run() (Report, error) {
	var report Report

	targets, err := p.Targets()
	if err != nil {
		return report, err
	}

	for _, input := range targets {
		output := utils.OutputPath(input, p.settings.OutputPath())

		if !p.settings.Force() && utils.PathExists(output) {
			p.log.Warn("skip (already exist)", zap.String("input", input), zap.String("output", output))
			report.Skipped++
			continue
		}

		if err := p.process(input, output); err != nil {
			return report, err
		}
		report.Processed++
	}

	p.log.Info("done",
		zap.Int("processed", report.Processed),
		zap.Int("skipped", report.Skipped),
		zap.String("output_dir", p.settings.OutputPath()),
	)
	return report, nil
}

func (p *Processor) process(input, output string) error {
	img, err := p.processor.LoadJPEG(input)
	if err != nil {
		return &Error{Stage: StageDecode, Input: input, Output: output, Err: err}
	}

	marked, err := p.processor.Watermark(img, p.settings.Logo(), p.settings.Resolution(), p.settings.Position())
	if err != nil {
		return &Error{Stage: StageResize, Input: input, Output: output, Err: err}
	}

	if err := p.processor.SaveJPEG(marked, output); err != nil {
		return &Error{Stage: StageEncode, Input: input, Output: output, Err: err}
	}

	b := marked.Bounds()
	p.log.Info("processed",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return nil
}
