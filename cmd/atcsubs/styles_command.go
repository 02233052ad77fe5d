package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"atcsubs/internal/profile"
)

func newStylesCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var airdataPaths []string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Show the resolved styling for every speaker and meta alias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			doc, _, err := loadProject(inputPath, airdataPaths)
			if err != nil {
				return err
			}

			model, err := profile.Build(doc, cfg.AlphaOrder())
			if err != nil {
				return err
			}

			headers := []string{"Key", "Kind", "Name", "Position", "Color", "Background", "Box Threshold", "Show Name"}
			var rows [][]string
			for _, resolved := range model.Styles() {
				background := "none"
				if resolved.HasBackground {
					background = resolved.BackgroundToken
				}
				rows = append(rows, []string{
					resolved.Key,
					resolved.Kind.String(),
					resolved.DisplayName,
					resolved.Position,
					resolved.ColorToken,
					background,
					strconv.Itoa(resolved.Threshold),
					yesNo(resolved.ShowName),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "comms.ini", "Input project file")
	cmd.Flags().StringArrayVar(&airdataPaths, "airdata", nil, "Airdata YAML library to merge (repeatable)")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
