// Package assemble translates a ResumeData into the ordered layout blocks
// the paging engine consumes.
//
// Every user-supplied string goes through markup.Text (or Bold/Italic),
// which escapes it; emphasis is only ever added here.
package assemble

import (
	"strings"

	"github.com/more-shubham/resume/internal/app/markup"
	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/layout"
)

const (
	enDash     = "–"
	emDash     = "—"
	bulletChar = "•"
)

// Assembler is stateless apart from the theme it was built with.
type Assembler struct {
	theme layout.Theme
}

func New(theme layout.Theme) *Assembler {
	return &Assembler{theme: theme}
}

// Assemble produces the document for r: header, then the Summary, Skills,
// Experience, Projects and Education sections, each only when non-empty.
func (a *Assembler) Assemble(r domain.ResumeData) layout.Document {
	var blocks []layout.Block

	blocks = append(blocks, a.header(r.Contact)...)

	if r.Summary != "" {
		blocks = append(blocks, a.summary(r.Summary)...)
	}
	if len(r.Skills) > 0 {
		blocks = append(blocks, a.skills(r.Skills)...)
	}
	if len(r.Experience) > 0 {
		blocks = append(blocks, listSection(a, "Experience", r.Experience, a.experience)...)
	}
	if len(r.Projects) > 0 {
		blocks = append(blocks, listSection(a, "Projects", r.Projects, a.project)...)
	}
	if len(r.Education) > 0 {
		blocks = append(blocks, listSection(a, "Education", r.Education, a.education)...)
	}

	return layout.Document{
		Meta:   Metadata(r),
		Blocks: blocks,
	}
}

// Metadata derives the document properties from r.
func Metadata(r domain.ResumeData) layout.Metadata {
	return layout.Metadata{
		Title:    r.Contact.Name + " - Resume",
		Author:   r.Contact.Name,
		Subject:  r.Summary,
		Keywords: strings.Join(r.Keywords(), ", "),
	}
}

func (a *Assembler) header(c domain.ContactInfo) []layout.Block {
	parts := []string{c.Email}
	for _, optional := range []string{c.Phone, c.LinkedIn, c.GitHub, c.LeetCode, c.Location} {
		if optional != "" {
			parts = append(parts, optional)
		}
	}

	return []layout.Block{
		layout.Paragraph{Style: layout.StyleName, Text: markup.Text(c.Name)},
		layout.Paragraph{Style: layout.StyleContact, Text: markup.Text(strings.Join(parts, a.theme.ContactSeparator))},
	}
}

func (a *Assembler) sectionHeader(title string) []layout.Block {
	return []layout.Block{
		layout.Paragraph{Style: layout.StyleSectionHeader, Text: markup.Text(strings.ToUpper(title))},
		layout.Rule{Thickness: a.theme.RuleThickness, SpaceAfter: a.theme.RuleSpaceAfter},
	}
}

func (a *Assembler) twoColumn(left markup.Markup, leftStyle string, right markup.Markup, rightStyle string) layout.Row {
	return layout.Row{
		Left:         layout.Cell{Style: leftStyle, Text: left},
		Right:        layout.Cell{Style: rightStyle, Text: right},
		LeftFraction: a.theme.LeftColumnRatio,
	}
}

func (a *Assembler) summary(text string) []layout.Block {
	blocks := a.sectionHeader("Summary")
	return append(blocks, layout.Paragraph{Style: layout.StyleSummary, Text: markup.Text(text)})
}

func (a *Assembler) skills(skills []domain.SkillCategory) []layout.Block {
	blocks := a.sectionHeader("Skills")
	for _, sc := range skills {
		line := markup.Join(
			markup.Bold(sc.Category+":"),
			markup.Text(" "+strings.Join(sc.Items, ", ")),
		)
		blocks = append(blocks, layout.Paragraph{Style: layout.StyleSkills, Text: line})
	}
	return blocks
}

// listSection renders a titled list of entries separated by the item gap.
func listSection[T any](a *Assembler, title string, items []T, one func(T) []layout.Block) []layout.Block {
	blocks := a.sectionHeader(title)
	for i, it := range items {
		if i > 0 {
			blocks = append(blocks, layout.Spacer{Height: a.theme.ItemGap})
		}
		blocks = append(blocks, one(it)...)
	}
	return blocks
}

func (a *Assembler) experience(e domain.Experience) []layout.Block {
	blocks := []layout.Block{
		a.twoColumn(
			markup.Join(markup.Bold(e.Company), markup.Text(" "+emDash+" "+e.Role)), layout.StyleRoleLeft,
			markup.Text(dateRange(e.StartDate, e.EndDate)), layout.StyleDateRight,
		),
		a.twoColumn(
			markup.Italic(e.Location), layout.StyleLocationLeft,
			"", layout.StyleLocationLeft,
		),
	}
	return append(blocks, bullets(e.Bullets)...)
}

func (a *Assembler) project(p domain.Project) []layout.Block {
	name := markup.Bold(p.Name)
	if p.Link != "" {
		name = markup.Join(name, markup.Text(" | "+p.Link))
	}
	blocks := []layout.Block{layout.Paragraph{Style: layout.StyleProjectName, Text: name}}

	if p.Description != "" {
		blocks = append(blocks, layout.Paragraph{Style: layout.StyleProjectDetail, Text: markup.Text(p.Description)})
	}

	blocks = append(blocks, bullets(p.Bullets)...)

	if len(p.TechStack) > 0 {
		tech := markup.Join(markup.Bold("Tech:"), markup.Text(" "+strings.Join(p.TechStack, ", ")))
		blocks = append(blocks, layout.Paragraph{Style: layout.StyleProjectDetail, Text: tech})
	}
	return blocks
}

func (a *Assembler) education(e domain.Education) []layout.Block {
	blocks := []layout.Block{
		a.twoColumn(
			markup.Join(markup.Bold(e.University), markup.Text(" "+emDash+" "+e.Degree)), layout.StyleRoleLeft,
			markup.Text(dateRange(e.StartDate, e.EndDate)), layout.StyleDateRight,
		),
	}
	return append(blocks, bullets(e.Details)...)
}

func bullets(items []string) []layout.Block {
	out := make([]layout.Block, 0, len(items))
	for _, it := range items {
		out = append(out, layout.Paragraph{Style: layout.StyleBullet, Text: markup.Text(bulletChar + " " + it)})
	}
	return out
}

func dateRange(start, end string) string {
	return start + " " + enDash + " " + end
}
