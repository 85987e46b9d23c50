// Package logger holds the process-wide slog logger. Records are discarded
// unless debug logging is enabled, in which case they go to a JSON file
// inside the workspace.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logDir  = ".resume/logs"
	logName = "resume.log"
)

// Config selects where logs go. Without Debug every record is discarded.
type Config struct {
	Root  string
	Debug bool
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discardSink()
)

func discardSink() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Setup installs the global logger. With Debug it appends JSON records to
// <root>/.resume/logs/resume.log; cleanup closes the file and restores the
// discarding logger.
func Setup(cfg Config) (func() error, error) {
	if !cfg.Debug {
		swap(discardSink())
		return func() error { return nil }, nil
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	dir := filepath.Join(filepath.Clean(root), filepath.FromSlash(logDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discardSink())
		return nil, err
	}

	path := filepath.Join(dir, logName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discardSink())
		return nil, err
	}

	l := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		AddSource:   true,
		ReplaceAttr: utcTime,
	}))
	swap(sink{log: l, file: f, path: path})

	l.Info("logger.initialized", "path", path, "pid", os.Getpid())

	return func() error {
		old := swap(discardSink())
		if old.file == nil {
			return nil
		}
		return old.file.Close()
	}, nil
}

// L returns the current logger; never nil.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// Path is the active log file, or "" when records are discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func swap(next sink) sink {
	mu.Lock()
	defer mu.Unlock()
	old := cur
	cur = next
	return old
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
