package rawtree

import (
	"reflect"
	"testing"
)

func TestMap(t *testing.T) {
	if m, ok := Map(map[string]any{"a": 1}); !ok || m["a"] != 1 {
		t.Fatalf("expected string-keyed map, got %v %v", m, ok)
	}

	m, ok := Map(map[any]any{1: "x", "b": 2})
	if !ok {
		t.Fatalf("expected map[any]any to convert")
	}
	if m["1"] != "x" || m["b"] != 2 {
		t.Fatalf("unexpected converted map %v", m)
	}

	for _, v := range []any{nil, "s", []any{}, 3} {
		if _, ok := Map(v); ok {
			t.Errorf("Map(%#v) should fail", v)
		}
	}
}

func TestList(t *testing.T) {
	if l, ok := List([]any{"a", 1}); !ok || len(l) != 2 {
		t.Fatalf("expected list, got %v %v", l, ok)
	}
	if l, ok := List([]string{"a"}); !ok || l[0] != "a" {
		t.Fatalf("expected []string to convert, got %v %v", l, ok)
	}
	for _, v := range []any{nil, "abc", map[string]any{}} {
		if _, ok := List(v); ok {
			t.Errorf("List(%#v) should fail", v)
		}
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{"", false},
		{" ", true},
		{"x", true},
		{0, false},
		{2023, true},
		{0.0, false},
		{false, false},
		{true, true},
		{[]any{}, false},
		{[]any{1}, true},
		{map[string]any{}, false},
		{map[string]any{"a": 1}, true},
	}
	for _, c := range cases {
		if got := Truthy(c.in); got != c.want {
			t.Errorf("Truthy(%#v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStringAndStrings(t *testing.T) {
	if got := String(2023); got != "2023" {
		t.Fatalf("expected 2023, got %q", got)
	}
	if got := String(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}

	got := Strings([]any{"Go", 3, true})
	want := []string{"Go", "3", "true"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	empty := Strings(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
