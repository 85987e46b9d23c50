// Package runstore keeps the render history as JSON lines under
// <root>/.resume/history.jsonl.
package runstore

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
)

const historyFile = "history.jsonl"

type JSONStore struct {
	dir string
}

type Option func(*JSONStore)

// WithDir overrides the directory holding history.jsonl.
func WithDir(dir string) Option {
	return func(s *JSONStore) {
		if dir != "" {
			s.dir = dir
		}
	}
}

func NewJSONStore(root string, opts ...Option) *JSONStore {
	s := &JSONStore{dir: filepath.Join(root, ".resume")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RenderHistory = (*JSONStore)(nil)

func (s *JSONStore) Path() string {
	return filepath.Join(s.dir, historyFile)
}

// Record appends rec as one JSON line.
func (s *JSONStore) Record(rec domain.RenderRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return opErr("runstore.mkdir", s.dir, err)
	}

	line, err := gojson.Marshal(rec)
	if err != nil {
		return opErr("runstore.marshal", s.Path(), err)
	}

	f, err := os.OpenFile(s.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return opErr("runstore.open", s.Path(), err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return opErr("runstore.write", s.Path(), err)
	}
	return nil
}

// List skips lines that do not decode so a truncated write cannot hide
// the rest of the history.
func (s *JSONStore) List(limit int) ([]domain.RenderRecord, error) {
	b, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.RenderRecord{}, nil
		}
		return nil, opErr("runstore.read", s.Path(), err)
	}

	var all []domain.RenderRecord
	for _, line := range bytes.Split(b, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var rec domain.RenderRecord
		if gojson.Unmarshal(line, &rec) == nil {
			all = append(all, rec)
		}
	}

	out := make([]domain.RenderRecord, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}

func opErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
