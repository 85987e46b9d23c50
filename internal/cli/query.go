package cli

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/more-shubham/resume/internal/usecase"
	"github.com/more-shubham/resume/internal/usecase/query"
)

func queryCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "query EXPR...",
		Short: "Evaluate JSONPath expressions against the resume source",
		Example: `  resume query '$.contact.name'
  resume query '$.skills[*].category' '$.experience[0].company'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ws.close()

			res, err := usecase.NewQueryResume(ws.source).Execute(cmd.Context(), ws.inputPath(opts.input), args...)
			if err != nil {
				return err
			}
			return printQuery(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printQuery(w io.Writer, res []query.Result, format string) error {
	if format == "json" {
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, r := range res {
		if !r.Found {
			fmt.Fprintf(w, "%s: %s\n", r.Expr, r.Error)
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", r.Expr, formatValue(r.Value))
	}
	return nil
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
