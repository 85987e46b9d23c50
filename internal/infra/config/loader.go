// Package config layers the resume configuration: built-in defaults, then
// an optional resume.config.yaml at the workspace root, then RESUME_*
// environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/more-shubham/resume/internal/domain"
)

// EnvPrefix scopes the environment overrides, e.g. RESUME_PAGE_SIZE=a4.
const EnvPrefix = "RESUME_"

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration for root. A missing config file is not an
// error; a malformed one is KindInvalidConfig.
func (*Loader) Load(ctx context.Context, root string) (domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	base := domain.DefaultConfig()
	k := koanf.New(".")

	path := filepath.Join(root, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return domain.Config{}, invalid(path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.Config{}, invalid(path, err)
	}

	// RESUME_PAGE_SIZE -> page.size, RESUME_PATHS_OUTPUT -> paths.output
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(s, "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return domain.Config{}, invalid("", err)
	}

	cfg := base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return domain.Config{}, invalid(path, err)
	}

	if err := Validate(cfg); err != nil {
		return domain.Config{}, invalid(path, err)
	}
	return cfg, nil
}

// Validate rejects unknown page sizes and margins that leave no content area.
func Validate(cfg domain.Config) error {
	if strings.TrimSpace(cfg.Paths.Input) == "" {
		return errors.New("paths.input must not be empty")
	}
	if strings.TrimSpace(cfg.Paths.Output) == "" {
		return errors.New("paths.output must not be empty")
	}
	g, err := Geometry(cfg)
	if err != nil {
		return err
	}
	if g.Margin <= 0 {
		return fmt.Errorf("page.margin must be positive, got %v", g.Margin)
	}
	if g.ContentWidth() <= 0 || g.ContentHeight() <= 0 {
		return fmt.Errorf("page.margin %v leaves no room on a %s page", g.Margin, g.Page.Name)
	}
	return nil
}

// ResolvePath anchors a configured relative path at the workspace root.
func ResolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "config.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  errors.Join(domain.ErrInvalidConfig, err),
	}
}
