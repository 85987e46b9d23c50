package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel keeps the preview alive when the model panics. A panic in
// Update drops any pending generate, switches to the error screen and keeps
// the last good outline, so r reloads the source and q still quits. A panic
// in View only replaces that one frame.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("update", r, "msg", fmt.Sprintf("%T", msg))
			next, cmd = s.recovered(fmt.Errorf("preview panic: %v", r)), nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("view", r, "screen", int(s.m.scr))
			out = msgUnexpected
		}
	}()
	return s.m.View()
}

// recovered moves the preview to the error screen for err.
func (s safeModel) recovered(err error) safeModel {
	s.m.scr = screenError
	s.m.err = err
	s.m.generating = false
	s.m.toast = s.m.errorText(err)
	return s
}

func (s safeModel) logPanic(where string, r any, attrs ...any) {
	attrs = append([]any{
		"where", "preview." + where,
		"input", s.m.deps.InputPath,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}, attrs...)
	s.log.Error("preview.panic", attrs...)
}

var _ tea.Model = (*safeModel)(nil)
