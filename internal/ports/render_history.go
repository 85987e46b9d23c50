package ports

import "github.com/more-shubham/resume/internal/domain"

// RenderHistory persists a record of each successful render.
type RenderHistory interface {
	Record(rec domain.RenderRecord) error
	// List returns the most recent records first, at most limit (all when limit <= 0).
	List(limit int) ([]domain.RenderRecord, error)
}
