package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bnema/neon-boards/internal/adapters/render/panel"
	"github.com/bnema/neon-boards/internal/adapters/telemetry"
	"github.com/bnema/neon-boards/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const toastQueueSize = 8

func newPanelCmd(app *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the interactive boards panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			log, closeLog, err := panelLogger(app)
			if err != nil {
				return err
			}
			defer closeLog()

			if metricsAddr == "" {
				metricsAddr = app.cfg.GetString(keyMetricsAddr)
			}
			if metricsAddr != "" {
				go func() {
					if err := telemetry.Serve(ctx, metricsAddr, app.registry, log); err != nil {
						log.Error("metrics server stopped", "error", err)
					}
				}()
			}

			toasts := panel.NewToastQueue(toastQueueSize)
			controller, err := app.newController(ctx, toasts, log)
			if err != nil {
				return err
			}
			controller.Start(ctx)
			defer func() {
				cancel()
				<-controller.Done()
			}()

			model := panel.NewModel(ctx, controller, toasts.Toasts(), app.timeRange)
			return panel.Run(ctx, model, tea.WithAltScreen())
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while the panel runs")

	return cmd
}

// panelLogger keeps log lines off the terminal the panel draws on. They go
// to log.file when set and are dropped otherwise.
func panelLogger(app *app) (*slog.Logger, func(), error) {
	path := app.cfg.GetString(keyLogFile)
	if path == "" {
		return logging.Discard(), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := newLogger(app.cfg, file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	return log, func() { _ = file.Close() }, nil
}
