package yamlsource

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads a resume YAML file into an untyped tree of
// map[string]any, []any and scalars.
type Loader struct {
	readFile func(string) ([]byte, error)
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{readFile: os.ReadFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithReadFile swaps the file reader, mainly for tests.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(l *Loader) {
		if fn != nil {
			l.readFile = fn
		}
	}
}

var _ ports.ResumeSource = (*Loader)(nil)

// Read returns the document tree. A missing file is KindNotFound; bad YAML
// and empty documents are KindParse.
func (l *Loader) Read(path string) (any, error) {
	b, err := l.readFile(path)
	if err != nil {
		kind := domain.KindParse
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
			err = errors.Join(domain.ErrNotFound, err)
		}
		return nil, &domain.OpError{
			Op:   "yamlsource.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return nil, emptyErr(path)
	}

	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsource.parse",
			Kind: domain.KindParse,
			Path: path,
			Err:  err,
		}
	}
	if doc == nil {
		return nil, emptyErr(path)
	}

	return doc, nil
}

func emptyErr(path string) error {
	return &domain.OpError{
		Op:   "yamlsource.read",
		Kind: domain.KindParse,
		Path: path,
		Err:  domain.ErrEmptyDocument,
	}
}
