package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/infra/config"
	"github.com/more-shubham/resume/internal/infra/logger"
	"github.com/more-shubham/resume/internal/infra/pdfrender"
	"github.com/more-shubham/resume/internal/infra/runstore"
	"github.com/more-shubham/resume/internal/infra/workspacefinder"
	"github.com/more-shubham/resume/internal/infra/yamlsource"
	"github.com/more-shubham/resume/internal/layout"
	"github.com/more-shubham/resume/internal/ports"
	"github.com/more-shubham/resume/internal/usecase/assemble"
)

type workspaceCtx struct {
	root  string
	cfg   domain.Config
	theme layout.Theme

	source    ports.ResumeSource
	assembler *assemble.Assembler
	renderer  ports.DocumentRenderer
	history   ports.RenderHistory

	cleanup func() error
}

func loadWorkspace(ctx context.Context, opts *rootOptions) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader().Load(ctx, root)
	if err != nil {
		return nil, err
	}

	cleanup, logErr := logger.Setup(logger.Config{
		Root:  root,
		Debug: opts.debug || cfg.Log.Debug,
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", logErr)
	}

	theme, err := config.Theme(cfg)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	logger.L().Debug("workspace.loaded", "root", root, "page", cfg.Page.Size, "margin", cfg.Page.Margin)

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		theme:     theme,
		source:    yamlsource.NewLoader(),
		assembler: assemble.New(theme),
		renderer:  pdfrender.New(theme, pdfrender.WithLogger(logger.L())),
		history:   runstore.NewJSONStore(root),
		cleanup:   cleanup,
	}, nil
}

func (ws *workspaceCtx) close() {
	if ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

// inputPath prefers the flag as given, otherwise the configured path
// anchored at the workspace root.
func (ws *workspaceCtx) inputPath(flag string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return filepath.Clean(p)
	}
	return config.ResolvePath(ws.root, ws.cfg.Paths.Input)
}

func (ws *workspaceCtx) outputPath(flag string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return filepath.Clean(p)
	}
	return config.ResolvePath(ws.root, ws.cfg.Paths.Output)
}

// resolveWorkspaceRoot uses the explicit flag when set, otherwise searches
// upward from the working directory and falls back to it.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return workspacefinder.NewFinder().RootOrDir(wd)
}
