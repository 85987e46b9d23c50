// Package markup is the small emphasis language shared by the layout
// assembler and the paging engine.
//
// Only <b> and <i> are structural. Everything that comes from user data is
// entity-escaped on the way in, so a resume line such as "<script>" is
// carried as text and never reinterpreted as a tag.
package markup

import (
	"html"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Markup is escaped text with optional <b>/<i> emphasis tags.
type Markup string

// Text escapes s so that it is taken literally.
func Text(s string) Markup {
	return Markup(html.EscapeString(s))
}

// Bold wraps the escaped form of s in <b>.
func Bold(s string) Markup {
	return "<b>" + Text(s) + "</b>"
}

// Italic wraps the escaped form of s in <i>.
func Italic(s string) Markup {
	return "<i>" + Text(s) + "</i>"
}

// Join concatenates already-built fragments.
func Join(parts ...Markup) Markup {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(string(p))
	}
	return Markup(b.String())
}

// Run is a span of literal text sharing one emphasis.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Parse splits m into runs with entities decoded. Tags other than b/strong
// and i/em are kept as literal text.
func Parse(m Markup) []Run {
	if m == "" {
		return nil
	}

	var (
		runs   []Run
		bold   int
		italic int
	)
	emit := func(s string) {
		if s == "" {
			return
		}
		r := Run{Text: s, Bold: bold > 0, Italic: italic > 0}
		if n := len(runs); n > 0 && runs[n-1].Bold == r.Bold && runs[n-1].Italic == r.Italic {
			runs[n-1].Text += s
			return
		}
		runs = append(runs, r)
	}

	z := xhtml.NewTokenizer(strings.NewReader(string(m)))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if z.Err() != io.EOF {
				emit(string(z.Raw()))
			}
			return runs

		case xhtml.TextToken:
			emit(string(z.Text()))

		case xhtml.StartTagToken, xhtml.EndTagToken:
			name, _ := z.TagName()
			delta := 1
			if tt == xhtml.EndTagToken {
				delta = -1
			}
			switch string(name) {
			case "b", "strong":
				bold = clampAdd(bold, delta)
			case "i", "em":
				italic = clampAdd(italic, delta)
			default:
				emit(string(z.Raw()))
			}

		default:
			emit(string(z.Raw()))
		}
	}
}

// Plain returns the literal text of m without emphasis.
func Plain(m Markup) string {
	var b strings.Builder
	for _, r := range Parse(m) {
		b.WriteString(r.Text)
	}
	return b.String()
}

func clampAdd(n, delta int) int {
	n += delta
	if n < 0 {
		return 0
	}
	return n
}
