package config

import (
	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/layout"
)

// Geometry resolves the configured page size and margin.
func Geometry(cfg domain.Config) (layout.Geometry, error) {
	page, err := layout.PageSizeByName(cfg.Page.Size)
	if err != nil {
		return layout.Geometry{}, err
	}
	return layout.Geometry{Page: page, Margin: cfg.Page.Margin}, nil
}

// Theme builds the shared render theme for cfg. Call once per process and
// hand the result to both the assembler and the renderer.
func Theme(cfg domain.Config) (layout.Theme, error) {
	g, err := Geometry(cfg)
	if err != nil {
		return layout.Theme{}, invalid("", err)
	}
	return layout.DefaultTheme(g), nil
}
