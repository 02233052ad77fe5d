package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed template.ini
var projectTemplate string

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a starter comms project file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(name); err == nil {
				return fmt.Errorf("file already exists: %s", name)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("check target path: %w", err)
			}

			if err := os.WriteFile(name, []byte(projectTemplate), 0o644); err != nil {
				return fmt.Errorf("write template: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote template project to %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "comms.ini", "Name for the new project file")
	return cmd
}
