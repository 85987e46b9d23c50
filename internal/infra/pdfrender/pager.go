package pdfrender

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/more-shubham/resume/internal/app/markup"
	"github.com/more-shubham/resume/internal/layout"
)

// pager keeps the cursor logic for one document. fpdf core fonts expect
// Windows-1252 text, so every string is transcoded before it is measured or
// written.
type pager struct {
	pdf   *fpdf.Fpdf
	theme layout.Theme
	enc   *encoding.Encoder
}

func newPager(pdf *fpdf.Fpdf, theme layout.Theme) *pager {
	return &pager{
		pdf:   pdf,
		theme: theme,
		enc:   encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
}

func (p *pager) block(b layout.Block) error {
	g := p.theme.Geometry
	switch v := b.(type) {
	case layout.Paragraph:
		return p.paragraph(v.Style, v.Text, g.Margin, g.ContentWidth())
	case layout.Row:
		return p.row(v)
	case layout.Rule:
		p.rule(v)
		return nil
	case layout.Spacer:
		p.space(v.Height)
		return nil
	default:
		return fmt.Errorf("unsupported block %T", b)
	}
}

func (p *pager) paragraph(styleName string, m markup.Markup, x, w float64) error {
	st, ok := p.theme.Styles.Lookup(styleName)
	if !ok {
		return fmt.Errorf("unknown style %q", styleName)
	}
	p.space(st.SpaceBefore)
	p.text(st, m, x, w)
	p.space(st.SpaceAfter)
	return nil
}

// text sets m inside the column [x, x+w] starting at the current y.
func (p *pager) text(st layout.Style, m markup.Markup, x, w float64) {
	runs := markup.Parse(m)
	if len(runs) == 0 {
		return
	}

	restore := p.column(x, w)
	defer restore()

	p.ensureSpace(st.Leading)

	if st.Align != layout.AlignLeft && len(runs) == 1 {
		p.font(st, runs[0])
		p.pdf.SetX(x)
		p.pdf.MultiCell(w, st.Leading, p.encode(runs[0].Text), "", alignStr(st.Align), false)
		return
	}

	startX := x + st.LeftIndent + st.FirstLineIndent
	if st.Align != layout.AlignLeft {
		if total := p.width(st, runs); total <= w {
			startX = x + (w - total)
			if st.Align == layout.AlignCenter {
				startX = x + (w-total)/2
			}
		}
	}

	p.pdf.SetLeftMargin(x + st.LeftIndent)
	p.pdf.SetX(startX)
	for _, run := range runs {
		p.font(st, run)
		p.pdf.Write(st.Leading, p.encode(run.Text))
	}
	p.pdf.Ln(st.Leading)
}

func (p *pager) row(r layout.Row) error {
	left, ok := p.theme.Styles.Lookup(r.Left.Style)
	if !ok {
		return fmt.Errorf("unknown style %q", r.Left.Style)
	}
	right, ok := p.theme.Styles.Lookup(r.Right.Style)
	if !ok {
		return fmt.Errorf("unknown style %q", r.Right.Style)
	}

	g := p.theme.Geometry
	x := g.Margin
	leftW := g.ContentWidth() * r.LeftFraction
	rightW := g.ContentWidth() - leftW

	p.ensureSpace(max(left.Leading, right.Leading))
	page, y0 := p.pdf.PageNo(), p.pdf.GetY()

	// The right cell is normally a single date line, so it goes first and
	// the left cell is free to wrap onto the next page.
	p.pdf.SetXY(x+leftW, y0)
	p.text(right, r.Right.Text, x+leftW, rightW)
	yRight := p.pdf.GetY()
	if p.pdf.PageNo() == page {
		p.pdf.SetXY(x, y0)
	}

	p.text(left, r.Left.Text, x, leftW)
	yLeft := p.pdf.GetY()

	if p.pdf.PageNo() == page {
		p.pdf.SetY(max(yLeft, yRight))
	}
	return nil
}

func (p *pager) rule(r layout.Rule) {
	g := p.theme.Geometry
	p.ensureSpace(r.SpaceBefore + r.Thickness)

	y := p.pdf.GetY() + r.SpaceBefore
	p.pdf.SetLineWidth(r.Thickness)
	p.pdf.Line(g.Margin, y, g.Margin+g.ContentWidth(), y)
	p.pdf.SetY(y + r.Thickness + r.SpaceAfter)
}

// space advances the cursor; space that would cross the bottom margin
// starts a new page instead.
func (p *pager) space(h float64) {
	if h <= 0 {
		return
	}
	if p.pdf.GetY()+h > p.limit() {
		p.pdf.AddPage()
		return
	}
	p.pdf.SetY(p.pdf.GetY() + h)
}

func (p *pager) ensureSpace(h float64) {
	if p.pdf.GetY()+h > p.limit() {
		p.pdf.AddPage()
	}
}

func (p *pager) limit() float64 {
	_, pageH := p.pdf.GetPageSize()
	return pageH - p.theme.Geometry.Margin
}

// column narrows the page margins to [x, x+w] and returns a restore func.
func (p *pager) column(x, w float64) func() {
	l, _, r, _ := p.pdf.GetMargins()
	pageW, _ := p.pdf.GetPageSize()
	p.pdf.SetLeftMargin(x)
	p.pdf.SetRightMargin(pageW - (x + w))
	return func() {
		p.pdf.SetLeftMargin(l)
		p.pdf.SetRightMargin(r)
	}
}

func (p *pager) font(st layout.Style, run markup.Run) {
	var style strings.Builder
	if st.Bold || run.Bold {
		style.WriteByte('B')
	}
	if st.Italic || run.Italic {
		style.WriteByte('I')
	}
	p.pdf.SetFont(st.Font, style.String(), st.Size)
}

func (p *pager) width(st layout.Style, runs []markup.Run) float64 {
	var total float64
	for _, run := range runs {
		p.font(st, run)
		total += p.pdf.GetStringWidth(p.encode(run.Text))
	}
	return total
}

func (p *pager) encode(s string) string {
	out, err := p.enc.String(s)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r > 0x7e {
				return '?'
			}
			return r
		}, s)
	}
	return out
}

func alignStr(a layout.Align) string {
	switch a {
	case layout.AlignCenter:
		return "C"
	case layout.AlignRight:
		return "R"
	default:
		return "L"
	}
}
