package domain

import "fmt"

// IssueCode identifies the rule an input violated.
type IssueCode string

const (
	CodeRequired     IssueCode = "required"
	CodeBlank        IssueCode = "blank"
	CodeNotList      IssueCode = "not_list"
	CodeNotMapping   IssueCode = "not_mapping"
	CodeInvalidEmail IssueCode = "invalid_email"
	CodeInvalidURL   IssueCode = "invalid_url"
	CodeInvalidDate  IssueCode = "invalid_date"
)

// Issue is a single schema violation found in a raw resume tree.
//
// Scope is the human label of the enclosing entry ("Experience entry 2"),
// Path the machine location ("experience[1].start_date"). Both are empty for
// top-level issues.
type Issue struct {
	Code  IssueCode `json:"code"`
	Path  string    `json:"path,omitempty"`
	Scope string    `json:"scope,omitempty"`
	Field string    `json:"field,omitempty"`
	Value any       `json:"value,omitempty"`
}

// String renders the issue with the wording users see on the command line.
func (i Issue) String() string {
	if i.Code == CodeNotMapping && i.Field == "" {
		subject := i.Scope
		if subject == "" {
			subject = "Resume data"
		}
		return subject + " must be a dictionary"
	}

	msg := i.detail()
	if i.Scope != "" {
		return i.Scope + ": " + msg
	}
	return msg
}

func (i Issue) detail() string {
	switch i.Code {
	case CodeRequired:
		return fmt.Sprintf("Missing required field: '%s'", i.Field)
	case CodeBlank:
		return fmt.Sprintf("Field '%s' cannot be empty", i.Field)
	case CodeNotList:
		return fmt.Sprintf("'%s' must be a list", i.Field)
	case CodeNotMapping:
		return fmt.Sprintf("'%s' must be a dictionary", i.Field)
	case CodeInvalidEmail:
		return fmt.Sprintf("Invalid email format: '%v'", i.Value)
	case CodeInvalidURL:
		return fmt.Sprintf("Invalid URL format for %s: '%v'", i.Field, i.Value)
	case CodeInvalidDate:
		return fmt.Sprintf("Invalid %s format: '%v'", i.Field, i.Value)
	default:
		return fmt.Sprintf("%s: %s", i.Code, i.Field)
	}
}

// Issues is the ordered result of a validation pass. Empty means valid.
type Issues []Issue

// Messages formats every issue for display, preserving order.
func (iss Issues) Messages() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.String())
	}
	return out
}

// Err returns nil for an empty set and a *ValidationError otherwise.
func (iss Issues) Err() error {
	if len(iss) == 0 {
		return nil
	}
	return &ValidationError{Issues: iss}
}
