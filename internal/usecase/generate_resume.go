package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/more-shubham/resume/internal/app/template"
	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
	"github.com/more-shubham/resume/internal/usecase/assemble"
)

// GenerateResume renders a resume source into a PDF at the output path.
type GenerateResume struct {
	compose  *ComposeResume
	renderer ports.DocumentRenderer
	history  ports.RenderHistory

	log     *slog.Logger
	newID   func() string
	now     func() time.Time
	creator string
}

// GenerateResult summarizes one successful render.
type GenerateResult struct {
	RenderID   string
	InputPath  string
	OutputPath string
	Blocks     int
	Duration   time.Duration
}

type GenerateOption func(*GenerateResume)

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateResume) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithIDGenerator overrides the render id source (uuid by default).
func WithIDGenerator(fn func() string) GenerateOption {
	return func(uc *GenerateResume) {
		if fn != nil {
			uc.newID = fn
		}
	}
}

func WithClock(now func() time.Time) GenerateOption {
	return func(uc *GenerateResume) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithHistory records every successful render. Recording failures are
// logged and do not fail the render.
func WithHistory(h ports.RenderHistory) GenerateOption {
	return func(uc *GenerateResume) {
		uc.history = h
	}
}

// WithCreator sets the PDF creator field.
func WithCreator(creator string) GenerateOption {
	return func(uc *GenerateResume) {
		uc.creator = creator
	}
}

func NewGenerateResume(source ports.ResumeSource, assembler *assemble.Assembler, renderer ports.DocumentRenderer, opts ...GenerateOption) *GenerateResume {
	uc := &GenerateResume{
		renderer: renderer,
		log:      discardLogger(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.compose = NewComposeResume(source, assembler)
	return uc
}

// Execute never creates the output file when loading or validation fails.
// outputPath may contain {{name}}, {{slug}} and {{date}} placeholders.
func (uc *GenerateResume) Execute(ctx context.Context, inputPath, outputPath string) (GenerateResult, error) {
	id := uc.newID()
	log := uc.log.With("render_id", id)
	started := uc.now()

	log.Info("resume.generate.start", "input", inputPath, "output", outputPath)

	comp, err := uc.compose.run(ctx, inputPath, log)
	if err != nil {
		log.Error("resume.generate.failed", "stage", "compose", "err", err)
		return GenerateResult{}, err
	}

	outputPath, err = template.RenderString(outputPath, outputVars(comp.Resume, started))
	if err != nil {
		log.Error("resume.generate.failed", "stage", "output_path", "err", err)
		return GenerateResult{}, err
	}

	doc := comp.Document
	if uc.creator != "" {
		doc.Meta.Creator = uc.creator
	}

	if err := uc.renderer.Render(ctx, doc, outputPath); err != nil {
		log.Error("resume.generate.failed", "stage", "render", "err", err)
		return GenerateResult{}, err
	}

	res := GenerateResult{
		RenderID:   id,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Blocks:     len(doc.Blocks),
		Duration:   uc.now().Sub(started),
	}
	log.Info("resume.generate.done", "output", outputPath, "blocks", res.Blocks, "duration_ms", res.Duration.Milliseconds())

	if uc.history != nil {
		rec := domain.RenderRecord{
			ID:         id,
			Name:       comp.Resume.Contact.Name,
			InputPath:  inputPath,
			OutputPath: outputPath,
			Blocks:     res.Blocks,
			StartedAt:  started.UTC(),
			DurationMS: res.Duration.Milliseconds(),
		}
		if err := uc.history.Record(rec); err != nil {
			log.Warn("resume.history.failed", "err", err)
		}
	}
	return res, nil
}

// outputVars never yields a value containing a path separator, so a
// placeholder cannot move the output out of its directory.
func outputVars(r domain.ResumeData, at time.Time) map[string]string {
	slug := template.Slugify(r.Contact.Name)
	if slug == "" {
		slug = "resume"
	}
	name := template.PathComponent(r.Contact.Name)
	if name == "" {
		name = slug
	}
	return map[string]string{
		"name": name,
		"slug": slug,
		"date": at.Format("2006-01-02"),
	}
}
