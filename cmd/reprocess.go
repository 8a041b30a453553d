package main

import (
	"fmt"
	"holerite/internal/config"
	"holerite/pkg/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// dryRunPreview is how many failed notifications a dry run lists.
const dryRunPreview = 10

// reprocessCommand constructs the 'reprocess' subcommand that asks the API to
// send failed notifications again.
func reprocessCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reprocess",
		Short: "Sends failed payslip notifications again",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.ReprocessRequest{}
			req.Limit, _ = cmd.Flags().GetInt("limit")
			req.Unidade, _ = cmd.Flags().GetString("unidade")
			req.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			req.MaxRetries, _ = cmd.Flags().GetInt("max-retries")
			req.DryRun, _ = cmd.Flags().GetBool("dry-run")
			if cmd.Flags().Changed("incremental-retry") {
				incremental, _ := cmd.Flags().GetBool("incremental-retry")
				req.IncrementalRetry = &incremental
			}

			ids, _ := cmd.Flags().GetStringSlice("id")
			for _, s := range ids {
				id, err := uuid.Parse(s)
				if err != nil {
					return fmt.Errorf("invalid notification id %q: %w", s, err)
				}
				req.IDs = append(req.IDs, domain.NotificationID(id))
			}

			res, err := newAPIClient(cfg).Reprocess(cmd.Context(), req)
			if err != nil {
				return err //nolint: wrapcheck
			}

			if res.DryRun {
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%d failed notification(s) selected\n", res.TotalSelected)
				for i, item := range res.Items {
					if i == dryRunPreview {
						break
					}
					_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", item.ID, item.To, item.Subject)
				}
			}

			return printOutput(cmd, res)
		},
	}

	cmd.Flags().Int("limit", 0, "Maximum notifications to reprocess (server default when 0)")
	cmd.Flags().String("unidade", "", "Only reprocess notifications of this unidade")
	cmd.Flags().StringSlice("id", nil, "Only reprocess these notification ids")
	cmd.Flags().Int("batch-size", 0, "Notifications sent per batch (server default when 0)")
	cmd.Flags().Int("max-retries", 0, "Attempts per notification (server default when 0)")
	cmd.Flags().Bool("incremental-retry", true, "Wait longer after each failed attempt")
	cmd.Flags().Bool("dry-run", false, "List the selected notifications without sending")
	addOutputFlag(cmd)

	return cmd
}
