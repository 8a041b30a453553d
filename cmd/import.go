package main

import (
	"fmt"
	"holerite/internal/config"
	"holerite/internal/maintenance"
	"holerite/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand that loads colaboradores
// from a CSV file.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports colaboradores from a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path, _ := cmd.Flags().GetString("file")
			separator, _ := cmd.Flags().GetString("separator")
			upsert, _ := cmd.Flags().GetBool("upsert")

			sep, err := maintenance.ParseSeparator(separator)
			if err != nil {
				return err //nolint: wrapcheck
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("could not open csv: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			res, err := maintenance.NewImporter(strg).Import(ctx, f, maintenance.ImportOptions{
				Separator: sep,
				Upsert:    upsert,
			})
			if err != nil {
				return fmt.Errorf("could not import %s: %w", path, err)
			}
			logger.Info(ctx, "colaboradores imported",
				zap.String("file", path),
				zap.Int("total", res.Total),
				zap.Int("inserted", res.Inserted),
				zap.Int("updated", res.Updated),
				zap.Int("duplicated", res.Duplicated),
				zap.Int("skipped", res.Skipped),
				zap.Int("failed", res.Failed))

			return printOutput(cmd, res)
		},
	}

	cmd.Flags().String("file", "", "CSV file with nome, unidade and email columns")
	cmd.Flags().String("separator", "", "Column separator: ',', ';' or 'tab' (autodetected when empty)")
	cmd.Flags().Bool("upsert", false, "Update nome and unidade of colaboradores that already exist")
	addOutputFlag(cmd)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
