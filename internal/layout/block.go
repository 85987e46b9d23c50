package layout

import "github.com/more-shubham/resume/internal/app/markup"

// Block is one stylable unit the paging engine stacks vertically.
type Block interface {
	Kind() string
}

// Paragraph is flowing text in a named style.
type Paragraph struct {
	Style string
	Text  markup.Markup
}

// Rule is a full-width horizontal line.
type Rule struct {
	Thickness   float64
	SpaceBefore float64
	SpaceAfter  float64
}

// Spacer is vertical whitespace.
type Spacer struct {
	Height float64
}

// Cell is one side of a Row.
type Cell struct {
	Style string
	Text  markup.Markup
}

// Row splits the content width into a left region of LeftFraction and a
// right region holding the remainder. Both cells are top-aligned with no
// padding.
type Row struct {
	Left         Cell
	Right        Cell
	LeftFraction float64
}

func (Paragraph) Kind() string { return "paragraph" }
func (Rule) Kind() string      { return "rule" }
func (Spacer) Kind() string    { return "spacer" }
func (Row) Kind() string       { return "row" }

// Metadata is attached to the produced document.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
}

// Document is the assembler output: ordered blocks plus metadata.
type Document struct {
	Meta   Metadata
	Blocks []Block
}
