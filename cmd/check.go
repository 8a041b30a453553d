package main

import (
	"context"
	"errors"
	"fmt"
	"holerite/internal/config"
	"holerite/pkg/payslipapi"
	"holerite/pkg/storage"
	"time"

	"github.com/spf13/cobra"
)

// checkTimeout bounds each connectivity check.
const checkTimeout = 10 * time.Second

// CheckResult is the outcome of the connectivity probes.
type CheckResult struct {
	Database struct {
		OK            bool   `json:"ok"              yaml:"ok"`
		Colaboradores int64  `json:"colaboradores"   yaml:"colaboradores"`
		Unidades      int    `json:"unidades"        yaml:"unidades"`
		Error         string `json:"error,omitempty" yaml:"error,omitempty"`
	} `json:"database" yaml:"database"`
	API struct {
		OK     bool   `json:"ok"               yaml:"ok"`
		Status string `json:"status,omitempty" yaml:"status,omitempty"`
		Error  string `json:"error,omitempty"  yaml:"error,omitempty"`
	} `json:"api" yaml:"api"`
}

// checkDatabase pings st and counts what it holds.
func checkDatabase(ctx context.Context, st storage.Storage, res *CheckResult) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := func() error {
		if err := st.Ping(ctx); err != nil {
			return fmt.Errorf("could not ping database: %w", err)
		}
		total, err := st.CountColaboradores(ctx)
		if err != nil {
			return fmt.Errorf("could not count colaboradores: %w", err)
		}
		unidades, err := st.Unidades(ctx)
		if err != nil {
			return fmt.Errorf("could not list unidades: %w", err)
		}
		res.Database.Colaboradores = total
		res.Database.Unidades = len(unidades)

		return nil
	}()
	if err != nil {
		res.Database.Error = err.Error()

		return err
	}
	res.Database.OK = true

	return nil
}

// checkAPI calls the health endpoint of the payslip API.
func checkAPI(ctx context.Context, client payslipapi.Client, res *CheckResult) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	h, err := client.Health(ctx)
	if err != nil {
		res.API.Error = err.Error()

		return fmt.Errorf("could not reach api: %w", err)
	}
	res.API.OK = true
	res.API.Status = h.Status

	return nil
}

// checkCommand constructs the 'check' subcommand that verifies the database
// and the payslip API are reachable.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks database and API connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			skipDB, _ := cmd.Flags().GetBool("skip-db")
			skipAPI, _ := cmd.Flags().GetBool("skip-api")

			var res CheckResult
			var errs []error
			if !skipDB {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				errs = append(errs, checkDatabase(ctx, strg, &res))
			}
			if !skipAPI {
				errs = append(errs, checkAPI(ctx, newAPIClient(cfg), &res))
			}

			if err := printOutput(cmd, res); err != nil {
				return err
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().Bool("skip-db", false, "Do not check the database")
	cmd.Flags().Bool("skip-api", false, "Do not check the API")
	addOutputFlag(cmd)

	return cmd
}
