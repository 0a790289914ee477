package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"assparse/internal/api"
	"assparse/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP parse server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if b := strings.TrimSpace(bind); b != "" {
				cfg.API.Bind = b
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cache, err := ctx.openCache(logger, noCache)
			if err != nil {
				return err
			}
			defer cache.Close()

			srv, err := api.New(cfg, cache, logger)
			if err != nil {
				return err
			}
			if err := srv.Start(signalCtx); err != nil {
				return fmt.Errorf("start parse server: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (Ctrl+C to stop)\n", srv.Addr())

			<-signalCtx.Done()
			srv.Stop()
			logger.Info("parse server shut down", logging.String(logging.FieldEventType, "serve_stopped"))
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides api.bind)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Serve without the parse cache")
	return cmd
}
