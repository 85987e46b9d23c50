// Package fsworkspace scaffolds a resume workspace on disk from embedded
// templates.
package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
)

const (
	templatesRoot   = "templates"
	gitignoreName   = ".gitignore"
	gitignoreHeader = "# Resume"
)

// Directories created on init, relative to the workspace root.
var workspaceDirs = []string{
	"output",
	filepath.Join(".resume", "logs"),
}

// Generated artifacts that should stay out of version control.
var ignoredEntries = []string{
	"output/",
	".resume/",
}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes resume.config.yaml and a sample resume.yaml, keeping files that
// already exist unless spec.Force is set. The .gitignore is only appended to.
func (i *Initializer) Init(spec domain.WorkspaceSpec) (domain.InitReport, error) {
	root := filepath.Clean(spec.Root)

	rep, err := scaffold(root, spec.Force)
	if err != nil {
		return domain.InitReport{}, &domain.OpError{
			Op:   "fsworkspace.init",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}
	return rep, nil
}

func scaffold(root string, force bool) (domain.InitReport, error) {
	var rep domain.InitReport

	for _, d := range workspaceDirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return rep, err
		}
	}

	names, err := templateNames()
	if err != nil {
		return rep, err
	}

	for _, name := range names {
		dst := filepath.Join(root, filepath.FromSlash(name))

		if !force {
			if _, err := os.Stat(dst); err == nil {
				rep.Kept = append(rep.Kept, name)
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return rep, err
			}
		}

		b, err := fs.ReadFile(templatesFS, path.Join(templatesRoot, name))
		if err != nil {
			return rep, err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return rep, err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return rep, err
		}
		rep.Written = append(rep.Written, name)
	}

	changed, err := ensureGitignore(root)
	if err != nil {
		return rep, err
	}
	if changed {
		rep.Written = append(rep.Written, gitignoreName)
	} else {
		rep.Kept = append(rep.Kept, gitignoreName)
	}

	return rep, nil
}

// templateNames lists embedded template files relative to the templates
// directory, sorted.
func templateNames() ([]string, error) {
	var names []string
	err := fs.WalkDir(templatesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		names = append(names, strings.TrimPrefix(p, templatesRoot+"/"))
		return nil
	})
	sort.Strings(names)
	return names, err
}

// ensureGitignore appends the missing ignore entries under a "# Resume"
// header and reports whether the file changed.
func ensureGitignore(root string) (bool, error) {
	p := filepath.Join(root, gitignoreName)

	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	add := gitignoreAdditions(string(b))
	if add == "" {
		return false, nil
	}
	return true, os.WriteFile(p, []byte(string(b)+add), 0o644)
}

// gitignoreAdditions returns the text to append to existing so that every
// ignored entry is present.
func gitignoreAdditions(existing string) string {
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			present[t] = true
		}
	}

	var missing []string
	for _, e := range ignoredEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return ""
	}

	var out strings.Builder
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}
	return out.String()
}
