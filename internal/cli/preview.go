package cli

import (
	"github.com/spf13/cobra"

	"github.com/more-shubham/resume/internal/infra/logger"
	"github.com/more-shubham/resume/internal/ui/tui"
	"github.com/more-shubham/resume/internal/usecase"
)

func previewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the assembled resume layout in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer ws.close()

			return tui.Run(tui.Deps{
				Composer:   usecase.NewComposeResume(ws.source, ws.assembler, usecase.WithComposeLogger(logger.L())),
				Generator:  newGenerate(ws),
				InputPath:  ws.inputPath(opts.input),
				OutputPath: ws.outputPath(opts.output),
				Logger:     logger.L(),
				LogPath:    logger.Path(),
			})
		},
	}
}
