package layout

import (
	"fmt"
	"sort"
)

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Style describes how a paragraph or cell is set. Sizes are in points.
type Style struct {
	Name            string
	Font            string
	Bold            bool
	Italic          bool
	Size            float64
	Leading         float64
	Align           Align
	SpaceBefore     float64
	SpaceAfter      float64
	LeftIndent      float64
	FirstLineIndent float64
}

// StyleSheet is a read-only registry of named styles.
type StyleSheet struct {
	styles map[string]Style
}

// NewStyleSheet copies styles into a registry keyed by Style.Name.
// Duplicate names are rejected.
func NewStyleSheet(styles ...Style) (StyleSheet, error) {
	m := make(map[string]Style, len(styles))
	for _, s := range styles {
		if s.Name == "" {
			return StyleSheet{}, fmt.Errorf("style without name")
		}
		if _, dup := m[s.Name]; dup {
			return StyleSheet{}, fmt.Errorf("duplicate style %q", s.Name)
		}
		m[s.Name] = s
	}
	return StyleSheet{styles: m}, nil
}

func (ss StyleSheet) Lookup(name string) (Style, bool) {
	s, ok := ss.styles[name]
	return s, ok
}

// MustLookup panics on unknown names; use it only with the constants below.
func (ss StyleSheet) MustLookup(name string) Style {
	s, ok := ss.styles[name]
	if !ok {
		panic(fmt.Sprintf("layout: unknown style %q", name))
	}
	return s
}

// Names lists registered styles in lexical order.
func (ss StyleSheet) Names() []string {
	out := make([]string, 0, len(ss.styles))
	for k := range ss.styles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
