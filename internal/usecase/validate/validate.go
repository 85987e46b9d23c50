// Package validate checks an untyped resume tree against the resume schema.
//
// Every function here is total: malformed shapes become issues, never panics,
// and all issues of a pass are collected rather than stopping at the first.
package validate

import (
	"fmt"
	"strings"

	"github.com/more-shubham/resume/internal/app/rawtree"
	"github.com/more-shubham/resume/internal/domain"
)

type entrySchema struct {
	label    string
	section  string
	required []string
	lists    []string
	dates    []string
}

var (
	experienceSchema = entrySchema{
		label:    "Experience",
		section:  "experience",
		required: []string{"company", "role", "location", "start_date", "end_date", "bullets"},
		lists:    []string{"bullets"},
		dates:    []string{"start_date", "end_date"},
	}
	educationSchema = entrySchema{
		label:    "Education",
		section:  "education",
		required: []string{"degree", "university", "start_date", "end_date"},
		lists:    []string{"details"},
		dates:    []string{"start_date", "end_date"},
	}
	projectSchema = entrySchema{
		label:    "Project",
		section:  "projects",
		required: []string{"name"},
		lists:    []string{"bullets", "tech_stack"},
	}
)

// Resume validates the whole tree. An empty result means the tree can be
// handed to the model builder.
func Resume(raw any) domain.Issues {
	root, ok := rawtree.Map(raw)
	if !ok {
		return domain.Issues{{Code: domain.CodeNotMapping}}
	}

	out := RequiredFields(root, []string{"contact", "summary"}, "", "")

	if v, ok := root["contact"]; ok {
		out = append(out, Contact(v)...)
	}
	if v, ok := root["experience"]; ok {
		out = append(out, entries(v, experienceSchema)...)
	}
	if v, ok := root["education"]; ok {
		out = append(out, entries(v, educationSchema)...)
	}
	if v, ok := root["skills"]; ok {
		out = append(out, Skills(v)...)
	}
	if v, ok := root["projects"]; ok {
		out = append(out, entries(v, projectSchema)...)
	}

	return out
}

// Contact validates the contact mapping.
func Contact(v any) domain.Issues {
	contact, ok := rawtree.Map(v)
	if !ok {
		return domain.Issues{{Code: domain.CodeNotMapping, Path: "contact", Field: "contact"}}
	}

	out := RequiredFields(contact, []string{"name", "email"}, "", "contact")

	if email := contact["email"]; rawtree.Truthy(email) && !IsValidEmail(rawtree.String(email)) {
		out = append(out, domain.Issue{
			Code:  domain.CodeInvalidEmail,
			Path:  "contact.email",
			Field: "email",
			Value: email,
		})
	}

	for _, key := range []string{"linkedin", "github", "leetcode"} {
		if link := contact[key]; rawtree.Truthy(link) && !IsValidURL(rawtree.String(link)) {
			out = append(out, domain.Issue{
				Code:  domain.CodeInvalidURL,
				Path:  "contact." + key,
				Field: key,
				Value: link,
			})
		}
	}

	return out
}

// Skills validates the skills section. Each entry needs a category and a
// list of items.
func Skills(v any) domain.Issues {
	list, ok := rawtree.List(v)
	if !ok {
		return domain.Issues{{Code: domain.CodeNotList, Path: "skills", Field: "skills"}}
	}

	var out domain.Issues
	for i, item := range list {
		scope := fmt.Sprintf("Skills entry %d", i+1)
		path := fmt.Sprintf("skills[%d]", i)

		entry, ok := rawtree.Map(item)
		if !ok {
			out = append(out, domain.Issue{Code: domain.CodeNotMapping, Path: path, Scope: scope})
			continue
		}

		if !rawtree.Truthy(entry["category"]) {
			out = append(out, domain.Issue{Code: domain.CodeRequired, Path: path + ".category", Scope: scope, Field: "category"})
		}
		if _, isList := rawtree.List(entry["items"]); !isList {
			out = append(out, domain.Issue{Code: domain.CodeNotList, Path: path + ".items", Scope: scope, Field: "items"})
		}
	}
	return out
}

// RequiredFields reports keys that are absent, null, or blank strings.
// scope labels the enclosing entry and prefix is its machine path.
func RequiredFields(m map[string]any, keys []string, scope, prefix string) domain.Issues {
	var out domain.Issues
	for _, key := range keys {
		v, present := m[key]
		switch {
		case !present || v == nil:
			out = append(out, domain.Issue{Code: domain.CodeRequired, Path: join(prefix, key), Scope: scope, Field: key})
		default:
			if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
				out = append(out, domain.Issue{Code: domain.CodeBlank, Path: join(prefix, key), Scope: scope, Field: key})
			}
		}
	}
	return out
}

func entries(v any, s entrySchema) domain.Issues {
	list, ok := rawtree.List(v)
	if !ok {
		return domain.Issues{{Code: domain.CodeNotList, Path: s.section, Field: s.section}}
	}

	var out domain.Issues
	for i, item := range list {
		scope := fmt.Sprintf("%s entry %d", s.label, i+1)
		path := fmt.Sprintf("%s[%d]", s.section, i)

		entry, ok := rawtree.Map(item)
		if !ok {
			out = append(out, domain.Issue{Code: domain.CodeNotMapping, Path: path, Scope: scope})
			continue
		}
		out = append(out, checkEntry(entry, s, scope, path)...)
	}
	return out
}

func checkEntry(entry map[string]any, s entrySchema, scope, path string) domain.Issues {
	out := RequiredFields(entry, s.required, scope, path)

	for _, field := range s.lists {
		if v, present := entry[field]; present {
			if _, isList := rawtree.List(v); !isList {
				out = append(out, domain.Issue{Code: domain.CodeNotList, Path: join(path, field), Scope: scope, Field: field})
			}
		}
	}

	for _, field := range s.dates {
		v := entry[field]
		if rawtree.Truthy(v) && !IsValidDate(rawtree.String(v)) {
			out = append(out, domain.Issue{Code: domain.CodeInvalidDate, Path: join(path, field), Scope: scope, Field: field, Value: v})
		}
	}

	return out
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
