package usecase

import (
	"context"
	"errors"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/ports"
)

// ValidateResume checks a resume source without building or rendering it.
type ValidateResume struct {
	source ports.ResumeSource
}

func NewValidateResume(source ports.ResumeSource) *ValidateResume {
	return &ValidateResume{source: source}
}

// Execute returns every issue found. When issues exist the error is an
// OpError of kind validation; load failures return no issues.
func (uc *ValidateResume) Execute(ctx context.Context, inputPath string) (domain.Issues, error) {
	_, err := loadValid(ctx, uc.source, inputPath, discardLogger())
	if err == nil {
		return domain.Issues{}, nil
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Issues, err
	}
	return nil, err
}
