package main

import (
	"bytes"
	"errors"
	"fmt"
	"holerite/internal/config"
	"holerite/pkg/domain"
	"holerite/pkg/payslipapi/httpclient"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// sendCommand constructs the 'send' subcommand that uploads a payslip PDF to
// the process endpoint and prints the status code and the response.
func sendCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Uploads a payslip PDF to be mailed to the colaboradores of a unidade",
		Example: `  holerite send --pdf ./pdfs/matriz.pdf --unidade MATRIZ --dry-run
  holerite send --pdf ./pdfs/matriz.pdf --unidade MATRIZ --test-recipient rh@example.com
  holerite send --pdf ./pdfs/matriz.pdf --test-recipient rh@example.com
  holerite send --pdf ./pdfs/matriz.pdf --unidade MATRIZ --confirm YES --batch-size 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfPath, _ := cmd.Flags().GetString("pdf")
			req := domain.ProcessRequest{}
			req.Unidade, _ = cmd.Flags().GetString("unidade")
			req.Subject, _ = cmd.Flags().GetString("subject")
			req.Message, _ = cmd.Flags().GetString("message")
			req.Confirm, _ = cmd.Flags().GetString("confirm")
			req.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			req.DryRun, _ = cmd.Flags().GetBool("dry-run")
			req.TestRecipient, _ = cmd.Flags().GetString("test-recipient")

			content, err := os.ReadFile(pdfPath)
			if err != nil {
				return fmt.Errorf("could not read pdf: %w", err)
			}

			res, status, err := newAPIClient(cfg).Process(cmd.Context(), req, domain.PayslipFile{
				Filename: filepath.Base(pdfPath),
				Content:  content,
			})
			if status != 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status: %d\n", status)
			}
			var respErr *httpclient.ResponseError
			if errors.As(err, &respErr) {
				if body := bytes.TrimSpace(respErr.Body); len(body) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", body)
				}
			}
			if err != nil {
				return err //nolint: wrapcheck
			}

			return printOutput(cmd, res)
		},
	}

	cmd.Flags().String("pdf", "", "Path of the payslip PDF")
	cmd.Flags().String("unidade", "", "Unidade whose colaboradores receive the payslip (optional with --test-recipient)")
	cmd.Flags().String("subject", "", "E-mail subject (server default when empty)")
	cmd.Flags().String("message", "", "E-mail body; {{nome}} and {{unidade}} are replaced per recipient")
	cmd.Flags().String("confirm", "", "Must be YES to mail the whole unidade")
	cmd.Flags().Int("batch-size", 0, "E-mails released per batch (server default when 0)")
	cmd.Flags().Bool("dry-run", false, "Plan the recipients without sending")
	cmd.Flags().String("test-recipient", "", "Send a single message to this address instead")
	addOutputFlag(cmd)
	_ = cmd.MarkFlagRequired("pdf")

	return cmd
}
