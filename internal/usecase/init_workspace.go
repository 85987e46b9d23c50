package usecase

import (
	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
)

// InitWorkspace scaffolds a resume workspace.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, force bool) (domain.InitReport, error) {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, Force: force})
}
