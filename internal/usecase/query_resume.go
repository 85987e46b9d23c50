package usecase

import (
	"context"

	"github.com/more-shubham/resume/internal/ports"
	"github.com/more-shubham/resume/internal/usecase/query"
)

// QueryResume evaluates JSONPath expressions over the raw source tree.
// The source is not validated, so broken documents can be inspected.
type QueryResume struct {
	source ports.ResumeSource
}

func NewQueryResume(source ports.ResumeSource) *QueryResume {
	return &QueryResume{source: source}
}

func (uc *QueryResume) Execute(ctx context.Context, inputPath string, exprs ...string) ([]query.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := uc.source.Read(inputPath)
	if err != nil {
		return nil, err
	}
	return query.Apply(raw, exprs), nil
}
