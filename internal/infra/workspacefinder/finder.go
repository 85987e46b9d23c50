package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
)

// Finder locates a resume workspace root by searching upward for
// resume.config.yaml.
type Finder struct {
	ConfigFile string // defaults to domain.ConfigFileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: domain.ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// RootOrDir returns the workspace root above dir, or dir itself when no
// config file is found.
func (f *Finder) RootOrDir(dir string) (string, error) {
	root, err := f.FindRoot(dir)
	if err == nil {
		return root, nil
	}
	if domain.IsKind(err, domain.KindNotFound) {
		return filepath.Abs(dir)
	}
	return "", err
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
