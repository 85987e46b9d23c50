// Package pdfrender is the paging engine: it lays layout blocks out on
// fixed-size pages with go-pdf/fpdf and writes the PDF file.
package pdfrender

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/layout"
	"github.com/more-shubham/resume/internal/ports"
)

type Renderer struct {
	theme layout.Theme
	now   func() time.Time
	log   *slog.Logger
}

type Option func(*Renderer)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

func New(theme layout.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme: theme,
		now:   time.Now,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.DocumentRenderer = (*Renderer)(nil)

// Render writes doc to outputPath, creating parent directories as needed.
// A failure part-way may leave a partial file behind.
func (r *Renderer) Render(ctx context.Context, doc layout.Document, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return execErr("pdfrender.mkdir", dir, err)
		}
	}

	pdf := r.newPDF(doc.Meta)
	p := newPager(pdf, r.theme)

	for i, b := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.block(b); err != nil {
			return execErr("pdfrender.layout", outputPath, fmt.Errorf("block %d (%s): %w", i, b.Kind(), err))
		}
	}

	if err := pdf.Error(); err != nil {
		return execErr("pdfrender.layout", outputPath, err)
	}
	pages := pdf.PageNo()
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return execErr("pdfrender.write", outputPath, err)
	}

	r.log.Info("pdfrender.done", "path", outputPath, "blocks", len(doc.Blocks), "pages", pages)
	return nil
}

func (r *Renderer) newPDF(meta layout.Metadata) *fpdf.Fpdf {
	g := r.theme.Geometry

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Page.Width, Ht: g.Page.Height},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(true, g.Margin)
	pdf.SetCellMargin(0)

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetKeywords(meta.Keywords, true)
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	pdf.SetCreationDate(r.now())

	pdf.AddPage()
	return pdf
}

func execErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
