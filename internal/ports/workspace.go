package ports

import "github.com/more-shubham/resume/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec) (domain.InitReport, error)
}
