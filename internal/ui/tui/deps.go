package tui

import (
	"context"
	"log/slog"

	"github.com/more-shubham/resume/internal/usecase"
)

// Composer produces the assembled document without writing anything.
type Composer interface {
	Execute(ctx context.Context, inputPath string) (usecase.Composition, error)
}

// Generator writes the PDF.
type Generator interface {
	Execute(ctx context.Context, inputPath, outputPath string) (usecase.GenerateResult, error)
}

type Deps struct {
	Composer  Composer
	Generator Generator

	InputPath  string
	OutputPath string

	Logger *slog.Logger
	// LogPath is the debug log file, empty when logging is off.
	LogPath string
}
