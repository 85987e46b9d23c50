package cli

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/usecase"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a resume file without rendering it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ws.close()

			input := ws.inputPath(opts.input)
			issues, err := usecase.NewValidateResume(ws.source).Execute(cmd.Context(), input)
			if err != nil && !domain.IsKind(err, domain.KindValidation) {
				return err
			}

			if perr := printIssues(cmd.OutOrStdout(), input, issues, format); perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type issueJSON struct {
	domain.Issue
	Message string `json:"message"`
}

func printIssues(w io.Writer, input string, issues domain.Issues, format string) error {
	switch format {
	case "json":
		out := make([]issueJSON, 0, len(issues))
		for _, is := range issues {
			out = append(out, issueJSON{Issue: is, Message: is.String()})
		}
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"input":  input,
			"valid":  len(issues) == 0,
			"issues": out,
		})
	default:
		if len(issues) == 0 {
			fmt.Fprintln(w, "OK")
			return nil
		}
		fmt.Fprintf(w, "%s: %d issue(s)\n", input, len(issues))
		for _, is := range issues {
			fmt.Fprintf(w, "  - %s\n", is.String())
		}
		return nil
	}
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
