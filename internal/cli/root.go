package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/more-shubham/resume/internal/buildinfo"
	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/infra/logger"
	"github.com/more-shubham/resume/internal/usecase"
)

// Execute runs the command line and exits the process: 0 on success, 1 on
// any failure.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

type rootOptions struct {
	workspace string
	input     string
	output    string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "resume",
		Short:         "Generate a professional PDF resume from YAML data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ws.close()

			input, output := ws.inputPath(opts.input), ws.outputPath(opts.output)

			res, err := newGenerate(ws).Execute(cmd.Context(), input, output)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Resume written to %s\n", res.OutputPath)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected from "+domain.ConfigFileName+")")
	pf.StringVarP(&opts.input, "input", "i", "", "Path to YAML resume file (default: "+domain.DefaultInputPath+")")
	pf.StringVarP(&opts.output, "output", "o", "", "Path for output PDF (default: "+domain.DefaultOutputPath+")")
	pf.BoolVar(&opts.debug, "debug", false, "enable verbose logging to .resume/logs/resume.log")

	cmd.AddCommand(
		validateCmd(opts),
		queryCmd(opts),
		previewCmd(opts),
		historyCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func newGenerate(ws *workspaceCtx) *usecase.GenerateResume {
	return usecase.NewGenerateResume(ws.source, ws.assembler, ws.renderer,
		usecase.WithLogger(logger.L()),
		usecase.WithCreator(buildinfo.String()),
		usecase.WithHistory(ws.history),
	)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
