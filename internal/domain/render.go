package domain

import "time"

// RenderRecord describes one successful render, as kept in the render
// history.
type RenderRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	InputPath  string    `json:"input"`
	OutputPath string    `json:"output"`
	Blocks     int       `json:"blocks"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
}
