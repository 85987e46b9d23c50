package layout

import "testing"

func TestDefaultThemeRegistersAllStyles(t *testing.T) {
	th := DefaultTheme(Geometry{Page: Letter, Margin: 36})

	for _, name := range []string{
		StyleName, StyleContact, StyleSectionHeader, StyleRoleLeft, StyleDateRight,
		StyleLocationLeft, StyleBullet, StyleSkills, StyleSummary, StyleProjectName, StyleProjectDetail,
	} {
		if _, ok := th.Styles.Lookup(name); !ok {
			t.Errorf("missing style %s", name)
		}
	}
	if got := len(th.Styles.Names()); got != 11 {
		t.Fatalf("expected 11 styles, got %d", got)
	}

	name := th.Styles.MustLookup(StyleName)
	if !name.Bold || name.Align != AlignCenter || name.Size != 16 {
		t.Fatalf("unexpected name style: %+v", name)
	}
	if th.Styles.MustLookup(StyleDateRight).Align != AlignRight {
		t.Fatalf("expected right-aligned date style")
	}
}

func TestGeometryContentWidth(t *testing.T) {
	g := Geometry{Page: Letter, Margin: 36}
	if got := g.ContentWidth(); got != 540 {
		t.Fatalf("expected 540, got %v", got)
	}
	if got := g.ContentHeight(); got != 720 {
		t.Fatalf("expected 720, got %v", got)
	}
}

func TestPageSizeByName(t *testing.T) {
	cases := []struct {
		in      string
		want    PageSize
		wantErr bool
	}{
		{"letter", Letter, false},
		{"LETTER", Letter, false},
		{"", Letter, false},
		{" a4 ", A4, false},
		{"legal", PageSize{}, true},
	}
	for _, c := range cases {
		got, err := PageSizeByName(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("PageSizeByName(%q) err=%v, wantErr=%v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("PageSizeByName(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestNewStyleSheetRejectsDuplicates(t *testing.T) {
	if _, err := NewStyleSheet(Style{Name: "a"}, Style{Name: "a"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := NewStyleSheet(Style{}); err == nil {
		t.Fatalf("expected unnamed style error")
	}
}

func TestStyleSheetLookupReturnsCopy(t *testing.T) {
	ss, err := NewStyleSheet(Style{Name: "body", Size: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := ss.Lookup("body")
	s.Size = 99
	again, _ := ss.Lookup("body")
	if again.Size != 9 {
		t.Fatalf("expected registry to be unaffected, got %v", again.Size)
	}
}
