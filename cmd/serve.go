package main

import (
	"context"
	"errors"
	"fmt"
	"holerite/internal/api"
	"holerite/internal/api/handler/v1handler"
	"holerite/internal/config"
	"holerite/internal/payslip"
	"holerite/internal/worker"
	"holerite/pkg/logger"
	"holerite/pkg/mailer"
	"holerite/pkg/mailer/sendgrid"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Mail providers selectable with mail.provider.
const (
	mailProviderLog      = "log"
	mailProviderSendGrid = "sendgrid"
)

// newMailer returns the mailer selected by the configured provider.
func newMailer(cfg *config.Config) (mailer.Mailer, error) {
	switch cfg.Mail.Provider {
	case mailProviderLog, "":
		return mailer.NewLogMailer(), nil
	case mailProviderSendGrid:
		if cfg.Mail.SendGridAPIKey == "" {
			return nil, errors.New("mail.sendgridApiKey is required by the sendgrid provider")
		}

		return sendgrid.New(sendgrid.Options{
			APIKey:    cfg.Mail.SendGridAPIKey,
			FromEmail: cfg.Mail.FromEmail,
			FromName:  cfg.Mail.FromName,
			Sandbox:   cfg.Mail.SendGridSandbox,
		}), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
}

func setupServer(ctx context.Context, cfg *config.Config, service payslip.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Payslip: service}}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that runs the API server,
// the delivery workers and the reprocess scheduler until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, err := newMailer(cfg)
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			service := payslip.New(strg, m, payslip.NewOptions(cfg))

			// workers outlive the signal so in-flight deliveries finish during shutdown
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, service, worker.NewOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not start workers: %w", err)
			}
			scheduler, err := worker.StartReprocessScheduler(ctx, service, worker.NewReprocessOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not start reprocess scheduler: %w", err)
			}

			stopWebserver := setupServer(ctx, cfg, service)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			if scheduler != nil {
				select {
				case <-scheduler.Stop().Done():
				case <-shutdownCtx.Done():
					logger.Warn(shutdownCtx, "reprocess still running at shutdown")
				}
			}

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}

			return nil
		},
	}

	return cmd
}
