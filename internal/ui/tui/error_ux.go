package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/more-shubham/resume/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

const msgUnexpected = "Unexpected error (see logs)"

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		base := "file"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}

		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Resume file not found: " + base

		case domain.KindParse:
			if errors.Is(err, domain.ErrEmptyDocument) {
				return base + " is empty"
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid YAML at " + base

		case domain.KindValidation:
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return fmt.Sprintf("%d validation issue(s)", len(ve.Issues))
			}
			return "Validation failed"

		case domain.KindInvalidConfig:
			if line := extractLine(err.Error()); line != "" {
				return "Invalid config at " + base + " line " + line
			}
			return "Invalid config"

		default:
			return msgUnexpected
		}
	}

	return msgUnexpected
}

// errorText points unexpected errors at the debug log, or at --debug when
// no log is being written.
func (m model) errorText(err error) string {
	msg := userMessage(err)
	if msg != msgUnexpected {
		return msg
	}
	if m.deps.LogPath != "" {
		return "Unexpected error (see " + m.deps.LogPath + ")"
	}
	return "Unexpected error (rerun with --debug)"
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
