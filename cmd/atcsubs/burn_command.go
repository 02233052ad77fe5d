package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atcsubs/internal/burn"
	"atcsubs/internal/compile"
)

func newBurnCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var inputPath string
	var videoPath string
	var outputPath string
	var airdataPaths []string

	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Burn the compiled timeline onto video with ffmpeg",
		Long: `Compile a comms project and burn the resulting timeline onto video.

Modes:
  default      burn over the full source video
  trim         burn and cut the output to the first and last event
  transparent  render the timeline alone as a transparent VP9 overlay

Examples:
  atcsubs burn -v approach.mp4 -o burned
  atcsubs burn -m trim -v approach.mp4 -o clip
  atcsubs burn -m transparent -o overlay`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			mode, err := burn.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			doc, source, err := loadProject(inputPath, airdataPaths)
			if err != nil {
				return err
			}

			result, err := compile.Compile(doc, compile.Options{
				Defaults: cfg.Render,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			burner := burn.New(cfg.Burn, logger)
			written, err := burner.Run(cmd.Context(), burn.Request{
				Mode:       mode,
				Source:     source,
				Result:     result,
				VideoPath:  videoPath,
				OutputPath: outputPath,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "default", "Burn mode: default, trim, or transparent")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "comms.ini", "Input project file")
	cmd.Flags().StringVarP(&videoPath, "video", "v", "", "Source video (required for default and trim)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file; extension inferred from mode when omitted")
	cmd.Flags().StringArrayVar(&airdataPaths, "airdata", nil, "Airdata YAML library to merge (repeatable)")
	return cmd
}
