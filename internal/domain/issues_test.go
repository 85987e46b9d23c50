package domain

import "testing"

func TestIssueString(t *testing.T) {
	cases := []struct {
		name  string
		issue Issue
		want  string
	}{
		{"required", Issue{Code: CodeRequired, Field: "email"}, "Missing required field: 'email'"},
		{"blank scoped", Issue{Code: CodeBlank, Scope: "Education entry 2", Field: "degree"}, "Education entry 2: Field 'degree' cannot be empty"},
		{"section not list", Issue{Code: CodeNotList, Field: "experience"}, "'experience' must be a list"},
		{"entry field not list", Issue{Code: CodeNotList, Scope: "Project entry 1", Field: "bullets"}, "Project entry 1: 'bullets' must be a list"},
		{"root not mapping", Issue{Code: CodeNotMapping}, "Resume data must be a dictionary"},
		{"contact not mapping", Issue{Code: CodeNotMapping, Field: "contact"}, "'contact' must be a dictionary"},
		{"entry not mapping", Issue{Code: CodeNotMapping, Scope: "Skills entry 3"}, "Skills entry 3 must be a dictionary"},
		{"email", Issue{Code: CodeInvalidEmail, Field: "email", Value: "a@b"}, "Invalid email format: 'a@b'"},
		{"url", Issue{Code: CodeInvalidURL, Field: "github", Value: "nope"}, "Invalid URL format for github: 'nope'"},
		{"date", Issue{Code: CodeInvalidDate, Scope: "Experience entry 1", Field: "start_date", Value: 23}, "Experience entry 1: Invalid start_date format: '23'"},
	}

	for _, c := range cases {
		if got := c.issue.String(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestIssuesErr(t *testing.T) {
	if err := (Issues{}).Err(); err != nil {
		t.Fatalf("expected nil error for empty issues, got %v", err)
	}

	err := Issues{{Code: CodeRequired, Field: "summary"}}.Err()
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Issues) != 1 {
		t.Fatalf("expected one issue, got %d", len(verr.Issues))
	}
}
