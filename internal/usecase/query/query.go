// Package query evaluates JSONPath expressions against a raw resume tree.
package query

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/more-shubham/resume/internal/app/rawtree"
)

// Result is the outcome of one expression. Exactly one of Value or Error
// is meaningful.
type Result struct {
	Expr  string `json:"expr"`
	Found bool   `json:"found"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// Apply evaluates every expression independently, in the given order.
// A failing expression is reported in its Result; the others still run.
func Apply(raw any, exprs []string) []Result {
	doc := Normalize(raw)

	out := make([]Result, 0, len(exprs))
	for _, e := range exprs {
		expr := strings.TrimSpace(e)
		if expr == "" {
			out = append(out, Result{Expr: e, Error: "empty jsonpath expression"})
			continue
		}

		val, err := jsonpath.Get(expr, doc)
		if err != nil {
			out = append(out, Result{Expr: expr, Error: fmt.Sprintf("jsonpath error: %v", err)})
			continue
		}
		if isEmptyValue(val) {
			out = append(out, Result{Expr: expr, Error: "no value found"})
			continue
		}

		out = append(out, Result{Expr: expr, Found: true, Value: val})
	}
	return out
}

// Normalize converts YAML-shaped trees (map[any]any keys) into the
// map[string]any / []any form jsonpath walks.
func Normalize(v any) any {
	if m, ok := rawtree.Map(v); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = Normalize(val)
		}
		return out
	}
	if l, ok := rawtree.List(v); ok {
		out := make([]any, len(l))
		for i, val := range l {
			out[i] = Normalize(val)
		}
		return out
	}
	return v
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
