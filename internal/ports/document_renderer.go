package ports

import (
	"context"

	"github.com/more-shubham/resume/internal/layout"
)

// DocumentRenderer pages a layout document into a file at outputPath.
type DocumentRenderer interface {
	Render(ctx context.Context, doc layout.Document, outputPath string) error
}
