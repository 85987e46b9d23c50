package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/more-shubham/resume/internal/domain"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	var (
		limit  int
		format string
	)

	c := &cobra.Command{
		Use:   "history",
		Short: "List recent renders of this workspace",
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

			recs, err := ws.history.List(limit)
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), recs, format)
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of renders to list (0 for all)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printHistory(w io.Writer, recs []domain.RenderRecord, format string) error {
	if format == "json" {
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Fprintln(w, "No renders yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tNAME\tOUTPUT\tBLOCKS\tTOOK")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%dms\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"), r.Name, r.OutputPath, r.Blocks, r.DurationMS)
	}
	return tw.Flush()
}
