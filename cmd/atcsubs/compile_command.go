package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atcsubs/internal/compile"
)

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string
	var airdataPaths []string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a comms project into an ASS subtitle file",
		Long: `Compile a comms transcript project into an ASS subtitle timeline.

The project file declares speaker profiles, timestamp anchors, and the
transcript itself. Message durations are estimated from the expanded spoken
text and fitted between consecutive anchors.

Examples:
  atcsubs compile                          # comms.ini -> comms.ass
  atcsubs compile -i tower.ini -o tower.ass
  atcsubs compile --airdata lppt.yaml      # merge an airport data library`,
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

			doc, _, err := loadProject(inputPath, airdataPaths)
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

			if err := os.WriteFile(outputPath, []byte(result.Document.Render()), 0o644); err != nil {
				return fmt.Errorf("write subtitle file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", outputPath)
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "warning: entry %d: %s\n", warning.Index, warning.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "comms.ini", "Input project file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "comms.ass", "Output ASS file")
	cmd.Flags().StringArrayVar(&airdataPaths, "airdata", nil, "Airdata YAML library to merge (repeatable)")
	return cmd
}
