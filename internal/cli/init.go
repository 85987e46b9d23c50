package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/more-shubham/resume/internal/infra/fsworkspace"
	"github.com/more-shubham/resume/internal/usecase"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a resume workspace (config, sample resume, output dir)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			rep, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(abs, force)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Initialized resume workspace at %s\n", abs)
			for _, name := range rep.Written {
				fmt.Fprintf(w, "  wrote %s\n", name)
			}
			for _, name := range rep.Kept {
				fmt.Fprintf(w, "  kept  %s\n", name)
			}
			if len(rep.Kept) > 0 && !force {
				fmt.Fprintln(w, "Existing files were kept; use --force to replace them with the templates.")
			}
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files with templates")
	return c
}
