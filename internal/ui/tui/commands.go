package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const commandTimeout = time.Minute

func cmdCompose(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Composer == nil {
			return composedMsg{err: errors.New("Composer is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		comp, err := deps.Composer.Execute(ctx, deps.InputPath)
		if err != nil {
			deps.Logger.Error("preview.compose.failed", "input", deps.InputPath, "err", err)
		} else {
			deps.Logger.Info("preview.compose.ok", "input", deps.InputPath, "blocks", len(comp.Document.Blocks))
		}
		return composedMsg{comp: comp, err: err}
	}
}

func cmdGenerate(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Generator == nil {
			return generatedMsg{err: errors.New("Generator is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		res, err := deps.Generator.Execute(ctx, deps.InputPath, deps.OutputPath)
		return generatedMsg{res: res, err: err}
	}
}
