// Package build turns a validated raw resume tree into domain.ResumeData.
package build

import (
	"fmt"

	"github.com/more-shubham/resume/internal/app/rawtree"
	"github.com/more-shubham/resume/internal/domain"
)

// Resume builds the typed resume. raw must already have passed
// validate.Resume; a missing required key here is a caller bug and is
// reported as an execution error rather than a user-facing one.
func Resume(raw any) (domain.ResumeData, error) {
	root, ok := rawtree.Map(raw)
	if !ok {
		return domain.ResumeData{}, buildErr("", fmt.Errorf("resume is not a mapping"))
	}

	contactRaw, err := lookup(root, "contact", "")
	if err != nil {
		return domain.ResumeData{}, err
	}
	contact, err := buildContact(contactRaw)
	if err != nil {
		return domain.ResumeData{}, err
	}

	summary, err := lookup(root, "summary", "")
	if err != nil {
		return domain.ResumeData{}, err
	}

	out := domain.ResumeData{
		Contact:    contact,
		Summary:    rawtree.String(summary),
		Skills:     []domain.SkillCategory{},
		Experience: []domain.Experience{},
		Education:  []domain.Education{},
		Projects:   []domain.Project{},
	}

	for i, item := range list(root["skills"]) {
		sc, err := buildSkill(item, fmt.Sprintf("skills[%d]", i))
		if err != nil {
			return domain.ResumeData{}, err
		}
		out.Skills = append(out.Skills, sc)
	}
	for i, item := range list(root["experience"]) {
		exp, err := buildExperience(item, fmt.Sprintf("experience[%d]", i))
		if err != nil {
			return domain.ResumeData{}, err
		}
		out.Experience = append(out.Experience, exp)
	}
	for i, item := range list(root["education"]) {
		edu, err := buildEducation(item, fmt.Sprintf("education[%d]", i))
		if err != nil {
			return domain.ResumeData{}, err
		}
		out.Education = append(out.Education, edu)
	}
	for i, item := range list(root["projects"]) {
		p, err := buildProject(item, fmt.Sprintf("projects[%d]", i))
		if err != nil {
			return domain.ResumeData{}, err
		}
		out.Projects = append(out.Projects, p)
	}

	return out, nil
}

func buildContact(v any) (domain.ContactInfo, error) {
	m, err := mapping(v, "contact")
	if err != nil {
		return domain.ContactInfo{}, err
	}
	name, err := requiredString(m, "name", "contact")
	if err != nil {
		return domain.ContactInfo{}, err
	}
	email, err := requiredString(m, "email", "contact")
	if err != nil {
		return domain.ContactInfo{}, err
	}
	return domain.ContactInfo{
		Name:     name,
		Email:    email,
		Phone:    rawtree.String(m["phone"]),
		LinkedIn: rawtree.String(m["linkedin"]),
		GitHub:   rawtree.String(m["github"]),
		LeetCode: rawtree.String(m["leetcode"]),
		Location: rawtree.String(m["location"]),
	}, nil
}

func buildSkill(v any, path string) (domain.SkillCategory, error) {
	m, err := mapping(v, path)
	if err != nil {
		return domain.SkillCategory{}, err
	}
	category, err := requiredString(m, "category", path)
	if err != nil {
		return domain.SkillCategory{}, err
	}
	return domain.SkillCategory{
		Category: category,
		Items:    rawtree.Strings(m["items"]),
	}, nil
}

func buildExperience(v any, path string) (domain.Experience, error) {
	m, err := mapping(v, path)
	if err != nil {
		return domain.Experience{}, err
	}
	f, err := requiredStrings(m, path, "company", "role", "location", "start_date", "end_date")
	if err != nil {
		return domain.Experience{}, err
	}
	return domain.Experience{
		Company:   f["company"],
		Role:      f["role"],
		Location:  f["location"],
		StartDate: f["start_date"],
		EndDate:   f["end_date"],
		Bullets:   rawtree.Strings(m["bullets"]),
	}, nil
}

func buildEducation(v any, path string) (domain.Education, error) {
	m, err := mapping(v, path)
	if err != nil {
		return domain.Education{}, err
	}
	f, err := requiredStrings(m, path, "degree", "university", "start_date", "end_date")
	if err != nil {
		return domain.Education{}, err
	}
	return domain.Education{
		Degree:     f["degree"],
		University: f["university"],
		StartDate:  f["start_date"],
		EndDate:    f["end_date"],
		Details:    rawtree.Strings(m["details"]),
	}, nil
}

func buildProject(v any, path string) (domain.Project, error) {
	m, err := mapping(v, path)
	if err != nil {
		return domain.Project{}, err
	}
	name, err := requiredString(m, "name", path)
	if err != nil {
		return domain.Project{}, err
	}
	return domain.Project{
		Name:        name,
		Description: rawtree.String(m["description"]),
		TechStack:   rawtree.Strings(m["tech_stack"]),
		Link:        rawtree.String(m["link"]),
		Bullets:     rawtree.Strings(m["bullets"]),
	}, nil
}

func list(v any) []any {
	items, _ := rawtree.List(v)
	return items
}

func mapping(v any, path string) (map[string]any, error) {
	m, ok := rawtree.Map(v)
	if !ok {
		return nil, buildErr(path, fmt.Errorf("expected a mapping, got %T", v))
	}
	return m, nil
}

func lookup(m map[string]any, key, path string) (any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		full := key
		if path != "" {
			full = path + "." + key
		}
		return nil, buildErr(full, fmt.Errorf("missing key %q", key))
	}
	return v, nil
}

func requiredString(m map[string]any, key, path string) (string, error) {
	v, err := lookup(m, key, path)
	if err != nil {
		return "", err
	}
	return rawtree.String(v), nil
}

func requiredStrings(m map[string]any, path string, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		s, err := requiredString(m, k, path)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

func buildErr(path string, err error) error {
	return &domain.OpError{
		Op:   "build.resume",
		Kind: domain.KindExecution,
		Err:  fmt.Errorf("field %s: %w", path, err),
	}
}
