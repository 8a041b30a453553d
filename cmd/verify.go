package main

import (
	"fmt"
	"holerite/internal/config"
	"holerite/internal/maintenance"

	"github.com/spf13/cobra"
)

// verifyCommand constructs the 'verify' subcommand that prints the number of
// colaboradores per unidade.
func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Prints the number of colaboradores per unidade",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := maintenance.ReportOptions{}
			opts.Top, _ = cmd.Flags().GetInt("top")
			opts.SortBy, _ = cmd.Flags().GetString("sort")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := maintenance.NewReporter(strg).Report(ctx, opts)
			if err != nil {
				return fmt.Errorf("could not build report: %w", err)
			}

			return printOutput(cmd, report)
		},
	}

	cmd.Flags().Int("top", 0, "Only list the first N unidades (0 lists all)")
	cmd.Flags().String("sort", maintenance.SortByCount, "Sort unidades by count or name")
	addOutputFlag(cmd)

	return cmd
}
