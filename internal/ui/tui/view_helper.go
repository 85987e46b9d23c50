package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/more-shubham/resume/internal/app/markup"
	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/layout"
)

// outlineItem is one visible line of the preview list. Rules and spacers
// carry no text and are left out.
type outlineItem struct {
	index int
	title string
	desc  string
	block layout.Block
}

func (o outlineItem) Title() string       { return o.title }
func (o outlineItem) Description() string { return o.desc }
func (o outlineItem) FilterValue() string { return o.title + " " + o.desc }

type issueItem struct {
	issue domain.Issue
}

func (i issueItem) Title() string { return i.issue.String() }
func (i issueItem) Description() string {
	if i.issue.Path == "" {
		return string(i.issue.Code)
	}
	return i.issue.Path + " • " + string(i.issue.Code)
}
func (i issueItem) FilterValue() string { return i.issue.String() }

const outlineWidth = 72

func outline(doc layout.Document) []outlineItem {
	out := make([]outlineItem, 0, len(doc.Blocks))
	for i, b := range doc.Blocks {
		switch v := b.(type) {
		case layout.Paragraph:
			title := clampString(markup.Plain(v.Text), outlineWidth)
			if v.Style == layout.StyleSectionHeader {
				title = "▌ " + title
			}
			out = append(out, outlineItem{index: i, title: title, desc: v.Style, block: b})
		case layout.Row:
			left := clampString(markup.Plain(v.Left.Text), outlineWidth)
			out = append(out, outlineItem{index: i, title: left, desc: markup.Plain(v.Right.Text), block: b})
		}
	}
	return out
}

func describeBlock(b layout.Block) string {
	var sb strings.Builder

	writeRuns := func(m markup.Markup) {
		for _, r := range markup.Parse(m) {
			var marks []string
			if r.Bold {
				marks = append(marks, "bold")
			}
			if r.Italic {
				marks = append(marks, "italic")
			}
			sb.WriteString("  - ")
			sb.WriteString(fmt.Sprintf("%q", r.Text))
			if len(marks) > 0 {
				sb.WriteString(" [" + strings.Join(marks, ",") + "]")
			}
			sb.WriteString("\n")
		}
	}

	switch v := b.(type) {
	case layout.Paragraph:
		sb.WriteString("Paragraph (" + v.Style + ")\n\n")
		writeRuns(v.Text)
	case layout.Row:
		sb.WriteString(fmt.Sprintf("Row (left %.0f%%)\n\n", v.LeftFraction*100))
		sb.WriteString("Left (" + v.Left.Style + "):\n")
		writeRuns(v.Left.Text)
		sb.WriteString("\nRight (" + v.Right.Style + "):\n")
		writeRuns(v.Right.Text)
	default:
		sb.WriteString(b.Kind())
		sb.WriteString("\n")
	}
	return sb.String()
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}
