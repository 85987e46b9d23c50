package tui

import "github.com/more-shubham/resume/internal/usecase"

type composedMsg struct {
	comp usecase.Composition
	err  error
}

type generatedMsg struct {
	res usecase.GenerateResult
	err error
}
