package main

import (
	"fmt"
	"holerite/internal/config"
	"holerite/internal/maintenance"

	"github.com/spf13/cobra"
)

// cleanCommand constructs the 'clean' subcommand that deletes colaboradores
// whose nome carries a corrupted-record marker, or every colaborador with --all.
func cleanCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Deletes corrupted colaborador records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := maintenance.CleanOptions{}
			opts.Markers, _ = cmd.Flags().GetStringSlice("marker")
			opts.All, _ = cmd.Flags().GetBool("all")
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			res, err := maintenance.NewCleaner(strg).Clean(ctx, opts)
			if err != nil {
				return fmt.Errorf("could not clean colaboradores: %w", err)
			}

			return printOutput(cmd, res)
		},
	}

	cmd.Flags().StringSlice("marker", maintenance.DefaultMarkers, "Substring of nome that marks a corrupted record")
	cmd.Flags().Bool("all", false, "Delete every colaborador")
	cmd.Flags().Bool("dry-run", false, "Count the matching records without deleting")
	addOutputFlag(cmd)

	return cmd
}
