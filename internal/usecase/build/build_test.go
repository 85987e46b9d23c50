package build

import (
	"reflect"
	"testing"

	"github.com/more-shubham/resume/internal/domain"
)

func TestResume_MinimalHasEmptyLists(t *testing.T) {
	r, err := Resume(map[string]any{
		"contact": map[string]any{"name": "Ada", "email": "ada@example.com"},
		"summary": "Engineer.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Skills == nil || r.Experience == nil || r.Education == nil || r.Projects == nil {
		t.Fatalf("expected non-nil empty lists, got %+v", r)
	}
	if len(r.Skills)+len(r.Experience)+len(r.Education)+len(r.Projects) != 0 {
		t.Fatalf("expected empty lists, got %+v", r)
	}
	if r.Contact.Phone != "" || r.Contact.LinkedIn != "" || r.Contact.LeetCode != "" {
		t.Fatalf("expected empty optional contact fields, got %+v", r.Contact)
	}
}

func TestResume_EndToEndScenario(t *testing.T) {
	r, err := Resume(map[string]any{
		"contact": map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"},
		"summary": "Engineer.",
		"experience": []any{map[string]any{
			"company": "X", "role": "Eng", "location": "Y",
			"start_date": "Jan 2020", "end_date": "present",
			"bullets": []any{"Did things"},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.Experience) != 1 {
		t.Fatalf("expected one experience, got %d", len(r.Experience))
	}
	exp := r.Experience[0]
	if exp.EndDate != "present" || exp.StartDate != "Jan 2020" {
		t.Fatalf("unexpected dates %+v", exp)
	}
	if !reflect.DeepEqual(exp.Bullets, []string{"Did things"}) {
		t.Fatalf("unexpected bullets %v", exp.Bullets)
	}
}

func TestResume_DatesCoercedToText(t *testing.T) {
	r, err := Resume(map[string]any{
		"contact": map[string]any{"name": "Ada", "email": "ada@example.com"},
		"summary": "s",
		"education": []any{map[string]any{
			"degree": "BSc", "university": "U", "start_date": 2019, "end_date": 2023,
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edu := r.Education[0]
	if edu.StartDate != "2019" || edu.EndDate != "2023" {
		t.Fatalf("expected text dates, got %+v", edu)
	}
	if edu.Details == nil || len(edu.Details) != 0 {
		t.Fatalf("expected empty details, got %#v", edu.Details)
	}
}

func TestResume_PreservesOrder(t *testing.T) {
	r, err := Resume(map[string]any{
		"contact": map[string]any{"name": "Ada", "email": "ada@example.com"},
		"summary": "s",
		"skills": []any{
			map[string]any{"category": "Zeta", "items": []any{"b", "a", "b"}},
			map[string]any{"category": "Alpha"},
			map[string]any{"category": "Zeta", "items": []any{"c"}},
		},
		"projects": []any{
			map[string]any{"name": "second"},
			map[string]any{"name": "first", "link": "x.dev", "tech_stack": []any{"Go"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.SkillCategory{
		{Category: "Zeta", Items: []string{"b", "a", "b"}},
		{Category: "Alpha", Items: []string{}},
		{Category: "Zeta", Items: []string{"c"}},
	}
	if !reflect.DeepEqual(r.Skills, want) {
		t.Fatalf("expected %+v, got %+v", want, r.Skills)
	}

	if r.Projects[0].Name != "second" || r.Projects[1].Name != "first" {
		t.Fatalf("unexpected project order %+v", r.Projects)
	}
	if r.Projects[0].Description != "" || r.Projects[0].Link != "" || len(r.Projects[0].TechStack) != 0 {
		t.Fatalf("expected project defaults, got %+v", r.Projects[0])
	}
	if r.Projects[1].Link != "x.dev" {
		t.Fatalf("expected link, got %+v", r.Projects[1])
	}
}

func TestResume_UnvalidatedInputIsExecutionError(t *testing.T) {
	_, err := Resume(map[string]any{"summary": "s"})
	if err == nil {
		t.Fatalf("expected error for missing contact")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}

	_, err = Resume(map[string]any{
		"contact":    map[string]any{"name": "Ada", "email": "a@b.co"},
		"summary":    "s",
		"experience": []any{map[string]any{"company": "X"}},
	})
	if err == nil {
		t.Fatalf("expected error for incomplete experience")
	}
}
