package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/more-shubham/resume/internal/domain"
)

const (
	prefixParse      = "Parse error:"
	prefixValidation = "Validation error:"
	prefixUnexpected = "Unexpected error:"
)

func report(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", category(err), describe(err))
}

// category maps an error kind to the stderr prefix.
func category(err error) string {
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindParse:
		return prefixParse
	case domain.KindValidation:
		return prefixValidation
	default:
		return prefixUnexpected
	}
}

func describe(err error) string {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	switch oe.Kind {
	case domain.KindNotFound:
		return "File not found: " + oe.Path
	case domain.KindParse:
		if errors.Is(err, domain.ErrEmptyDocument) {
			return "YAML file is empty"
		}
		if oe.Op == "yamlsource.parse" && oe.Err != nil {
			return "Invalid YAML syntax: " + oe.Err.Error()
		}
	case domain.KindValidation:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return ve.Error()
		}
	}
	return err.Error()
}
