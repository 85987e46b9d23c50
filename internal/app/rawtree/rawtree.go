// Package rawtree gives total, panic-free access to the untyped tree a
// deserializer produces: mappings, lists and scalars.
package rawtree

import (
	"fmt"
	"reflect"
)

// Map views v as a mapping with string keys. YAML mappings whose keys are
// not all strings are converted with fmt.Sprint keys.
func Map(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// List views v as a sequence.
func List(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// Truthy reports whether v is a non-zero value: non-empty strings and
// collections, true, non-zero numbers.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() > 0
	default:
		return !rv.IsZero()
	}
}

// String renders a scalar as text. nil becomes "".
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// Strings renders every element of a list as text. Anything that is not a
// list yields an empty, non-nil slice.
func Strings(v any) []string {
	items, ok := List(v)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, String(it))
	}
	return out
}
