package markup

import (
	"reflect"
	"testing"
)

func TestTextEscapesMarkupCharacters(t *testing.T) {
	got := Text(`User <Input> & 'Quotes' "Double"`)
	want := Markup("User &lt;Input&gt; &amp; &#39;Quotes&#39; &#34;Double&#34;")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseEmphasis(t *testing.T) {
	m := Join(Bold("Acme"), Text(" — Engineer"))
	got := Parse(m)
	want := []Run{
		{Text: "Acme", Bold: true},
		{Text: " — Engineer"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseKeepsEscapedTagsLiteral(t *testing.T) {
	raw := "<script>alert(1)</script> & <b>not bold</b>"
	got := Parse(Join(Italic(raw)))
	want := []Run{{Text: raw, Italic: true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseMergesAdjacentRuns(t *testing.T) {
	got := Parse(Join(Text("a"), Text("b"), Bold("c"), Bold("d")))
	want := []Run{{Text: "ab"}, {Text: "cd", Bold: true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseUnknownTagIsLiteral(t *testing.T) {
	got := Plain("x<u>y</u>")
	if got != "x<u>y</u>" {
		t.Fatalf("expected unknown tags kept literally, got %q", got)
	}
}

func TestParseUnbalancedCloseTag(t *testing.T) {
	got := Parse("</b>plain")
	want := []Run{{Text: "plain"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseEmpty(t *testing.T) {
	if runs := Parse(""); runs != nil {
		t.Fatalf("expected nil runs, got %+v", runs)
	}
}

func TestPlainRoundTripsUserText(t *testing.T) {
	inputs := []string{
		"plain",
		"Tom & Jerry",
		`<img src="x" onerror='y'>`,
		"5 < 6 > 4",
		"&amp; already escaped",
	}
	for _, in := range inputs {
		if got := Plain(Text(in)); got != in {
			t.Errorf("Plain(Text(%q)) = %q", in, got)
		}
	}
}
