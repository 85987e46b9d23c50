package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/layout"
	"github.com/more-shubham/resume/internal/ports"
	"github.com/more-shubham/resume/internal/usecase/assemble"
	"github.com/more-shubham/resume/internal/usecase/build"
	"github.com/more-shubham/resume/internal/usecase/validate"
)

// Composition is everything produced before paging.
type Composition struct {
	Resume   domain.ResumeData
	Document layout.Document
}

// ComposeResume runs load -> validate -> build -> assemble without writing
// anything. It backs both rendering and the preview.
type ComposeResume struct {
	source    ports.ResumeSource
	assembler *assemble.Assembler
	log       *slog.Logger
}

type ComposeOption func(*ComposeResume)

func WithComposeLogger(l *slog.Logger) ComposeOption {
	return func(uc *ComposeResume) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewComposeResume(source ports.ResumeSource, assembler *assemble.Assembler, opts ...ComposeOption) *ComposeResume {
	uc := &ComposeResume{
		source:    source,
		assembler: assembler,
		log:       discardLogger(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ComposeResume) Execute(ctx context.Context, inputPath string) (Composition, error) {
	return uc.run(ctx, inputPath, uc.log)
}

func (uc *ComposeResume) run(ctx context.Context, inputPath string, log *slog.Logger) (Composition, error) {
	raw, err := loadValid(ctx, uc.source, inputPath, log)
	if err != nil {
		return Composition{}, err
	}

	data, err := build.Resume(raw)
	if err != nil {
		return Composition{}, err
	}
	if err := ctx.Err(); err != nil {
		return Composition{}, err
	}

	doc := uc.assembler.Assemble(data)
	log.Debug("resume.assemble.done", "blocks", len(doc.Blocks))

	return Composition{Resume: data, Document: doc}, nil
}

// loadValid reads the source and validates it in one pass. Validation
// issues come back as an OpError of kind validation wrapping a
// *domain.ValidationError.
func loadValid(ctx context.Context, source ports.ResumeSource, inputPath string, log *slog.Logger) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := source.Read(inputPath)
	if err != nil {
		log.Debug("resume.load.failed", "path", inputPath, "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if issues := validate.Resume(raw); len(issues) > 0 {
		log.Debug("resume.validate.failed", "path", inputPath, "issues", len(issues))
		return nil, &domain.OpError{
			Op:   "resume.validate",
			Kind: domain.KindValidation,
			Path: inputPath,
			Err:  issues.Err(),
		}
	}
	return raw, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
